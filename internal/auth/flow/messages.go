package flow

import "github.com/mehmetcepni/bincard-auth/internal/auth/domain"

// Fixed user-facing templates per kind. Unknown falls back to the raw backend
// message verbatim when one is present.
var kindMessages = map[domain.ErrorKind]string{
	domain.KindUserNotFound:      "Bu telefon numarasıyla kayıtlı kullanıcı bulunamadı.",
	domain.KindIncorrectPassword: "Telefon numarası veya şifre hatalı.",
	domain.KindInvalidCode:       "Doğrulama kodu hatalı. Lütfen tekrar deneyin.",
	domain.KindExpiredCode:       "Doğrulama kodunun süresi dolmuş. Yeni kod isteyin.",
	domain.KindUnauthorized:      "Oturum yetkiniz bulunmuyor. Lütfen tekrar giriş yapın.",
	domain.KindServerFault:       "Sunucu hatası oluştu. Lütfen daha sonra tekrar deneyin.",
	domain.KindNetworkFault:      "Bağlantı kurulamadı. İnternet bağlantınızı kontrol edin.",
}

const (
	noticeCodeSent      = "Telefonunuza gönderilen doğrulama kodunu girin."
	noticeCodeResent    = "Doğrulama kodu yeniden gönderildi."
	fallbackUserMessage = "Beklenmeyen bir hata oluştu. Lütfen tekrar deneyin."
)

func userMessage(cls domain.ErrorClassification) string {
	if msg, ok := kindMessages[cls.Kind]; ok {
		return msg
	}
	if cls.Message != "" {
		return cls.Message
	}
	return fallbackUserMessage
}

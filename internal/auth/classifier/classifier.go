// Package classifier normalizes free-form backend failures into ErrorKind.
//
// The backend exposes no stable error codes, only localized message text, so
// classification is an ordered substring cascade over known phrases. Any
// backend wording change silently breaks a rule here; all phrases are kept in
// this one file so a swap to structured codes touches nothing else.
package classifier

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/mehmetcepni/bincard-auth/internal/auth/domain"
)

// RawError is the input to Classify: whatever is known about a failed call.
// All fields are optional.
type RawError struct {
	StatusCode int
	Message    string
	Err        error
}

// FromResponse builds a RawError from a backend envelope that reported
// failure.
func FromResponse(resp *domain.Response) RawError {
	if resp == nil {
		return RawError{}
	}
	return RawError{StatusCode: resp.StatusCode, Message: resp.Message}
}

// FromTransport builds a RawError from a transport-level error (no envelope).
func FromTransport(err error) RawError {
	raw := RawError{Err: err}
	if err != nil {
		raw.Message = err.Error()
	}
	return raw
}

// Phrase tables, lowercased. Matching is first-table, first-phrase wins, in
// the order applied inside Classify.
var (
	verificationPhrases = []string{
		"yeni cihaz",
		"cihaz algılandı",
		"telefon doğrulanmamış",
		"telefon numarası doğrulanmadı",
		"doğrulama kodu gönderildi",
		"new device",
		"phone not verified",
		"verification required",
	}
	frozenPhrases = []string{
		"dondurulmuş",
		"donduruldu",
		"hesap pasif",
		"hesap aktif değil",
		"account frozen",
		"account is frozen",
		"account inactive",
	}
	userNotFoundPhrases = []string{
		"kullanıcı bulunamadı",
		"kayıtlı kullanıcı yok",
		"user not found",
		"no such user",
	}
	wrongPasswordPhrases = []string{
		"şifre hatalı",
		"hatalı şifre",
		"incorrect password",
		"wrong password",
	}
	expiredCodePhrases = []string{
		"kodun süresi dolmuş",
		"süresi dolmuş kod",
		"expired code",
		"code expired",
		"code has expired",
	}
	invalidCodePhrases = []string{
		"geçersiz kod",
		"hatalı kod",
		"doğrulama kodu hatalı",
		"invalid code",
		"wrong code",
	}
	serverFaultPhrases = []string{
		"sunucu hatası",
		"server error",
		"internal error",
	}
	networkPhrases = []string{
		"zaman aşımı",
		"bağlantı hatası",
		"network",
		"timeout",
		"timed out",
		"connection refused",
		"connection reset",
		"no such host",
	}
)

// Classify maps a failure to exactly one ErrorKind. It is pure and
// deterministic given the same input and never panics.
func Classify(raw RawError) domain.ErrorClassification {
	msg := strings.ToLower(raw.Message)

	cls := domain.ErrorClassification{
		Message:    raw.Message,
		StatusCode: raw.StatusCode,
	}

	switch {
	case containsAny(msg, verificationPhrases):
		cls.Kind = domain.KindVerificationRequired
	case containsAny(msg, frozenPhrases):
		cls.Kind = domain.KindAccountFrozen
	case containsAny(msg, userNotFoundPhrases):
		cls.Kind = domain.KindUserNotFound
	case containsAny(msg, wrongPasswordPhrases):
		cls.Kind = domain.KindIncorrectPassword
	case containsAny(msg, expiredCodePhrases):
		cls.Kind = domain.KindExpiredCode
	case containsAny(msg, invalidCodePhrases):
		cls.Kind = domain.KindInvalidCode
	case raw.StatusCode == 401:
		cls.Kind = domain.KindUnauthorized
	case raw.StatusCode == 500 || containsAny(msg, serverFaultPhrases):
		cls.Kind = domain.KindServerFault
	case isNetworkError(raw.Err) || containsAny(msg, networkPhrases):
		cls.Kind = domain.KindNetworkFault
	default:
		cls.Kind = domain.KindUnknown
	}

	return cls
}

func containsAny(msg string, phrases []string) bool {
	if msg == "" {
		return false
	}
	for _, p := range phrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

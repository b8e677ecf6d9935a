package dto

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

type VerifyPhoneRequest struct {
	Code       string `json:"code"`
	DeviceInfo string `json:"deviceInfo"`
	AppVersion string `json:"appVersion"`
	Platform   string `json:"platform"`
	IPAddress  string `json:"ipAddress"`
}

type PhoneRequest struct {
	Phone string `json:"phone"`
}

type CodeRequest struct {
	Code string `json:"code"`
}

type PasswordResetRequest struct {
	ResetToken  string `json:"resetToken"`
	NewPassword string `json:"newPassword"`
}

type UnfreezeRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Note     string `json:"note,omitempty"`
}

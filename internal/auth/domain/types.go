package domain

import (
	"regexp"
	"time"

	autherror "github.com/mehmetcepni/bincard-auth/internal/errors"
)

const (
	// PasswordLength is the fixed length of a BinCard account password.
	PasswordLength = 6
	// MinCodeLength is the minimum verification-code length enforced for
	// registration; login and reset codes are only checked for presence.
	MinCodeLength = 4
)

var phonePattern = regexp.MustCompile(`^0\d{10}$`)

// Purpose identifies which flow a pending verification belongs to.
type Purpose string

const (
	PurposeLogin         Purpose = "login"
	PurposeRegister      Purpose = "register"
	PurposePasswordReset Purpose = "password_reset"
)

// Credentials is a phone+password pair as entered by the user. It must never
// be logged or persisted beyond the active submission.
type Credentials struct {
	Phone    string
	Password string
}

// Validate checks the raw input shape before any network call: phone must be
// 11 digits with a leading 0, password exactly PasswordLength characters.
func (c Credentials) Validate() error {
	if !phonePattern.MatchString(c.Phone) {
		return autherror.ErrInvalidPhoneFormat
	}
	if len(c.Password) != PasswordLength {
		return autherror.ErrPasswordLength
	}
	return nil
}

// NormalizePhone converts a validated local number (0XXXXXXXXXX) to E.164
// (+90XXXXXXXXXX).
func NormalizePhone(phone string) (string, error) {
	if !phonePattern.MatchString(phone) {
		return "", autherror.ErrInvalidPhoneFormat
	}
	return "+90" + phone[1:], nil
}

// PendingVerification is the transient OTP-entry state. Exactly one may be
// active per flow instance; it is destroyed on success, cancel, or restart.
type PendingVerification struct {
	Phone     string
	Purpose   Purpose
	CreatedAt time.Time
}

// UnfreezeRequest carries the credentials that triggered an AccountFrozen
// classification, prefilled, plus an optional free-text note.
type UnfreezeRequest struct {
	Phone    string
	Password string
	Note     string
}

// DeviceMetadata accompanies verification calls. Opaque to this core beyond
// being forwarded.
type DeviceMetadata struct {
	Descriptor string
	AppVersion string
	Platform   string
	IPAddress  string
}

// Response is the normalized backend answer to any auth endpoint. The
// backend envelope is {success, message?, token?/resetToken?}; StatusCode is
// the HTTP status the envelope arrived with (0 when unknown).
type Response struct {
	Success    bool
	Message    string
	Token      string
	ResetToken string
	StatusCode int
}

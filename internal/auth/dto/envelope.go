package dto

// Envelope is the backend's uniform response shape. Token fields have moved
// between the top level and data across backend versions; both spots are
// decoded.
type Envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Token      string `json:"token,omitempty"`
	ResetToken string `json:"resetToken,omitempty"`
	Data       *struct {
		Token      string `json:"token,omitempty"`
		ResetToken string `json:"resetToken,omitempty"`
	} `json:"data,omitempty"`
}

// AccessToken returns the access token wherever the envelope carries it.
func (e *Envelope) AccessToken() string {
	if e.Token != "" {
		return e.Token
	}
	if e.Data != nil {
		return e.Data.Token
	}
	return ""
}

// PasswordResetToken returns the reset token wherever the envelope carries it.
func (e *Envelope) PasswordResetToken() string {
	if e.ResetToken != "" {
		return e.ResetToken
	}
	if e.Data != nil {
		return e.Data.ResetToken
	}
	return ""
}

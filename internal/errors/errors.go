package errors

import (
	"errors"
)

var (
	ErrInvalidPhoneFormat    = errors.New("phone must be 11 digits starting with 0")
	ErrPasswordLength        = errors.New("password must be exactly 6 characters")
	ErrMissingName           = errors.New("first and last name are required")
	ErrEmptyCode             = errors.New("verification code is required")
	ErrCodeTooShort          = errors.New("verification code must be at least 4 digits")
	ErrMissingUnfreezeFields = errors.New("phone and password are required to unfreeze")
	ErrRequestInFlight       = errors.New("another request is already in flight")
	ErrFlowFinished          = errors.New("flow already reached a terminal state")
	ErrWrongState            = errors.New("operation not allowed in current flow state")
	ErrNoPendingVerification = errors.New("no verification is pending")
	ErrNoResetToken          = errors.New("no reset token has been obtained in this flow")
	ErrEmptyAccessToken      = errors.New("access token is empty")
)

package domain

import "context"

// Gateway is the backend contract consumed by the flows. Implementations
// return a transport error only when no envelope could be obtained; a backend
// rejection arrives as a Response with Success=false.
type Gateway interface {
	Login(ctx context.Context, phone, password string) (*Response, error)
	Register(ctx context.Context, firstName, lastName, phone, password string) (*Response, error)
	VerifyPhone(ctx context.Context, code string, meta DeviceMetadata) (*Response, error)
	ResendLoginCode(ctx context.Context, phone string) (*Response, error)
	ResendRegisterCode(ctx context.Context, phone string) (*Response, error)
	ForgotPassword(ctx context.Context, phone string) (*Response, error)
	PasswordVerifyCode(ctx context.Context, code string) (*Response, error)
	PasswordReset(ctx context.Context, resetToken, newPassword string) (*Response, error)
	UnfreezeAccount(ctx context.Context, req UnfreezeRequest) (*Response, error)
}

// TokenStore persists the session access token. Implementations must be safe
// for concurrent use. Load returns "" with a nil error when no token is set.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Delete(ctx context.Context) error
}

// PushRegistrar registers the device push token after a session commit. It is
// a best-effort observer: failures are logged and never affect the session.
type PushRegistrar interface {
	Register(ctx context.Context, accessToken string) error
}

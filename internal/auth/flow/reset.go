package flow

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mehmetcepni/bincard-auth/internal/auth/classifier"
	"github.com/mehmetcepni/bincard-auth/internal/auth/domain"
	autherror "github.com/mehmetcepni/bincard-auth/internal/errors"
)

var errNoTokenInResponse = errors.New("verify-code response carried no reset token")

// ResetFlow drives the two-step password reset: the verification code is
// exchanged for a one-time reset token, then the new password is submitted
// together with that token. The token lives only in flow memory and is
// discarded after its single successful use.
type ResetFlow struct {
	c   *core
	gw  domain.Gateway
	log *zap.Logger

	phone      string // normalized
	gate       *VerificationGate
	resetToken string
}

func NewResetFlow(gw domain.Gateway, log *zap.Logger) *ResetFlow {
	return &ResetFlow{c: newCore(), gw: gw, log: log}
}

// State returns the flow's current state.
func (f *ResetFlow) State() State {
	return f.c.state()
}

// Start requests a reset code for the given phone and opens the verification
// gate. forgotPassword doubles as the resend endpoint for this purpose.
func (f *ResetFlow) Start(ctx context.Context, phone string) (Result, error) {
	normalized, err := domain.NormalizePhone(phone)
	if err != nil {
		return Result{State: f.c.state()}, err
	}

	gen, err := f.c.begin(StateSubmitting, StateIdle, StateFailed)
	if err != nil {
		return Result{State: f.c.state()}, err
	}
	f.phone = normalized

	resp, callErr := f.gw.ForgotPassword(ctx, normalized)
	if callErr != nil {
		cls := classifier.Classify(classifier.FromTransport(callErr))
		if !f.c.finish(gen, StateFailed) {
			return Result{State: f.c.state()}, nil
		}
		return failure(StateFailed, cls), nil
	}
	if !resp.Success {
		cls := classifier.Classify(classifier.FromResponse(resp))
		if !f.c.finish(gen, StateFailed) {
			return Result{State: f.c.state()}, nil
		}
		return failure(StateFailed, cls), nil
	}

	f.gate = newGate(f.c, f.log, domain.PurposePasswordReset, normalized,
		func(ctx context.Context, code string) (*domain.Response, error) {
			return f.gw.PasswordVerifyCode(ctx, code)
		},
		f.captureToken,
		nil,
		StateTokenReady,
		f.gw.ForgotPassword,
	)
	if !f.c.finish(gen, StateVerificationRequired) {
		return Result{State: f.c.state()}, nil
	}
	notice := resp.Message
	if notice == "" {
		notice = noticeCodeSent
	}
	return Result{State: StateVerificationRequired, Notice: notice}, nil
}

// captureToken extracts the one-time reset token from a successful exchange.
// The dedicated field wins; some backend builds smuggle the token in the
// message field as a UUID-shaped string, checked as a fallback.
func (f *ResetFlow) captureToken(_ context.Context, resp *domain.Response) error {
	token := resp.ResetToken
	if token == "" {
		if candidate := strings.TrimSpace(resp.Message); candidate != "" {
			if _, err := uuid.Parse(candidate); err == nil {
				token = candidate
			}
		}
	}
	if token == "" {
		return errNoTokenInResponse
	}
	f.resetToken = token
	return nil
}

// SubmitCode forwards the reset code to the gate for the token exchange.
func (f *ResetFlow) SubmitCode(ctx context.Context, code string) (Result, error) {
	if f.gate == nil {
		return Result{State: f.c.state()}, autherror.ErrNoPendingVerification
	}
	return f.gate.SubmitCode(ctx, code)
}

// ResendCode requests a fresh reset code.
func (f *ResetFlow) ResendCode(ctx context.Context) (Result, error) {
	if f.gate == nil {
		return Result{State: f.c.state()}, autherror.ErrNoPendingVerification
	}
	return f.gate.Resend(ctx)
}

// SubmitNewPassword completes the reset with the exchanged token. It is
// rejected locally before a token exists in this flow instance. On success
// the token is discarded so a consumed token can never be resubmitted; on
// failure the token is kept, since it was not consumed.
func (f *ResetFlow) SubmitNewPassword(ctx context.Context, newPassword string) (Result, error) {
	if len(newPassword) != domain.PasswordLength {
		return Result{State: f.c.state()}, autherror.ErrPasswordLength
	}
	if f.resetToken == "" {
		return Result{State: f.c.state()}, autherror.ErrNoResetToken
	}

	gen, err := f.c.begin(StateResetting, StateTokenReady)
	if err != nil {
		return Result{State: f.c.state()}, err
	}

	resp, callErr := f.gw.PasswordReset(ctx, f.resetToken, newPassword)
	if callErr != nil {
		cls := classifier.Classify(classifier.FromTransport(callErr))
		if !f.c.finish(gen, StateTokenReady) {
			return Result{State: f.c.state()}, nil
		}
		return failure(StateTokenReady, cls), nil
	}
	if !resp.Success {
		cls := classifier.Classify(classifier.FromResponse(resp))
		if !f.c.finish(gen, StateTokenReady) {
			return Result{State: f.c.state()}, nil
		}
		return failure(StateTokenReady, cls), nil
	}

	f.resetToken = ""
	if !f.c.finish(gen, StateSuccess) {
		return Result{State: f.c.state()}, nil
	}
	f.log.Info("password reset completed", zap.String("phone", maskPhone(f.phone)))
	return Result{State: StateSuccess}, nil
}

// Pending exposes the active pending verification, if any.
func (f *ResetFlow) Pending() (domain.PendingVerification, bool) {
	if f.gate == nil {
		return domain.PendingVerification{}, false
	}
	return f.gate.Pending(), true
}

// Cancel discards the flow instance, including any held reset token.
func (f *ResetFlow) Cancel() {
	f.c.cancel()
	f.gate = nil
	f.resetToken = ""
	f.phone = ""
}

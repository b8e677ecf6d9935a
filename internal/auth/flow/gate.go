package flow

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mehmetcepni/bincard-auth/internal/auth/classifier"
	"github.com/mehmetcepni/bincard-auth/internal/auth/domain"
	autherror "github.com/mehmetcepni/bincard-auth/internal/errors"
)

// VerificationGate owns the OTP-entry sub-state of a flow. The gate is not
// single-shot: every failure kind leaves it open for another attempt;
// InvalidCode/ExpiredCode are surfaced inline, anything else as a generic
// failure message.
type VerificationGate struct {
	c       *core
	log     *zap.Logger
	pending domain.PendingVerification

	// verify performs the purpose-specific code exchange.
	verify func(ctx context.Context, code string) (*domain.Response, error)
	// onVerified consumes a successful exchange before the state transition
	// (reset-token capture). A non-nil error keeps the gate open. May be nil.
	onVerified func(ctx context.Context, resp *domain.Response) error
	// committed runs only once the transition to successState is confirmed
	// live, so a cancelled flow never reaches it (session commit). May be nil.
	committed func(ctx context.Context, resp *domain.Response)
	// successState is where the owning flow lands after onVerified: Success
	// for login/register, TokenReady for password reset.
	successState State

	resend *ResendController
}

func newGate(
	c *core,
	log *zap.Logger,
	purpose domain.Purpose,
	phone string,
	verify func(ctx context.Context, code string) (*domain.Response, error),
	onVerified func(ctx context.Context, resp *domain.Response) error,
	committed func(ctx context.Context, resp *domain.Response),
	successState State,
	resendFn func(ctx context.Context, phone string) (*domain.Response, error),
) *VerificationGate {
	return &VerificationGate{
		c:   c,
		log: log,
		pending: domain.PendingVerification{
			Phone:     phone,
			Purpose:   purpose,
			CreatedAt: time.Now(),
		},
		verify:       verify,
		onVerified:   onVerified,
		committed:    committed,
		successState: successState,
		resend:       newResendController(c, log, phone, resendFn),
	}
}

// Pending returns the active pending verification.
func (g *VerificationGate) Pending() domain.PendingVerification {
	return g.pending
}

// SubmitCode validates and exchanges the one-time code. Validation failures
// are local: no state change, no network call.
func (g *VerificationGate) SubmitCode(ctx context.Context, code string) (Result, error) {
	if code == "" {
		return Result{State: g.c.state()}, autherror.ErrEmptyCode
	}
	if g.pending.Purpose == domain.PurposeRegister && len(code) < domain.MinCodeLength {
		return Result{State: g.c.state()}, autherror.ErrCodeTooShort
	}

	gen, err := g.c.begin(StateVerifying, StateVerificationRequired)
	if err != nil {
		return Result{State: g.c.state()}, err
	}

	resp, err := g.verify(ctx, code)
	if err != nil {
		return g.reopen(gen, classifier.Classify(classifier.FromTransport(err))), nil
	}
	if !resp.Success {
		return g.reopen(gen, classifier.Classify(classifier.FromResponse(resp))), nil
	}

	if g.onVerified != nil {
		if err := g.onVerified(ctx, resp); err != nil {
			g.log.Warn("verification accepted but could not be consumed",
				zap.String("purpose", string(g.pending.Purpose)), zap.Error(err))
			return g.reopen(gen, domain.ErrorClassification{Kind: domain.KindUnknown}), nil
		}
	}

	if !g.c.finish(gen, g.successState) {
		return Result{State: g.c.state()}, nil
	}
	if g.committed != nil {
		g.committed(ctx, resp)
	}
	g.log.Info("verification completed", zap.String("purpose", string(g.pending.Purpose)))
	return Result{State: g.successState}, nil
}

// Resend delegates to the gate's resend controller.
func (g *VerificationGate) Resend(ctx context.Context) (Result, error) {
	return g.resend.Resend(ctx)
}

func (g *VerificationGate) reopen(gen uint64, cls domain.ErrorClassification) Result {
	if !g.c.finish(gen, StateVerificationRequired) {
		return Result{State: g.c.state()}
	}
	return failure(StateVerificationRequired, cls)
}

package flow

import (
	"context"

	"go.uber.org/zap"

	"github.com/mehmetcepni/bincard-auth/internal/auth/classifier"
	"github.com/mehmetcepni/bincard-auth/internal/auth/domain"
	autherror "github.com/mehmetcepni/bincard-auth/internal/errors"
)

// SessionCommitter is the slice of the session finalizer the flows need.
type SessionCommitter interface {
	Commit(ctx context.Context, accessToken string) error
}

// LoginFlow is the top-level authentication state machine for an existing
// account: credential submission, OTP verification on new-device or
// unverified-phone responses, and inline frozen-account recovery.
type LoginFlow struct {
	c   *core
	gw  domain.Gateway
	fin SessionCommitter
	log *zap.Logger

	meta domain.DeviceMetadata

	creds    domain.Credentials // normalized, kept for recovery prefill and replay
	gate     *VerificationGate
	recovery *FrozenAccountRecovery
}

func NewLoginFlow(gw domain.Gateway, fin SessionCommitter, meta domain.DeviceMetadata, log *zap.Logger) *LoginFlow {
	return &LoginFlow{c: newCore(), gw: gw, fin: fin, meta: meta, log: log}
}

// State returns the flow's current state.
func (f *LoginFlow) State() State {
	return f.c.state()
}

// Submit validates and submits the credentials. A validation failure keeps
// the flow where it is and issues no request; a second call while one is
// pending is rejected with ErrRequestInFlight.
func (f *LoginFlow) Submit(ctx context.Context, phone, password string) (Result, error) {
	creds := domain.Credentials{Phone: phone, Password: password}
	if err := creds.Validate(); err != nil {
		return Result{State: f.c.state()}, err
	}
	normalized, err := domain.NormalizePhone(phone)
	if err != nil {
		return Result{State: f.c.state()}, err
	}

	gen, err := f.c.begin(StateSubmitting, StateIdle, StateFailed)
	if err != nil {
		return Result{State: f.c.state()}, err
	}
	f.creds = domain.Credentials{Phone: normalized, Password: password}

	resp, callErr := f.gw.Login(ctx, normalized, password)
	return f.completeSubmit(ctx, gen, resp, callErr)
}

// resubmit replays the stored credentials after a successful unfreeze.
func (f *LoginFlow) resubmit(ctx context.Context) (Result, error) {
	gen, err := f.c.begin(StateSubmitting, StateAccountFrozenRecovery)
	if err != nil {
		return Result{State: f.c.state()}, err
	}
	resp, callErr := f.gw.Login(ctx, f.creds.Phone, f.creds.Password)
	return f.completeSubmit(ctx, gen, resp, callErr)
}

func (f *LoginFlow) completeSubmit(ctx context.Context, gen uint64, resp *domain.Response, callErr error) (Result, error) {
	if callErr != nil {
		cls := classifier.Classify(classifier.FromTransport(callErr))
		if !f.c.finish(gen, StateFailed) {
			return Result{State: f.c.state()}, nil
		}
		f.log.Warn("login call failed", zap.String("kind", string(cls.Kind)))
		return failure(StateFailed, cls), nil
	}

	if resp.Success {
		// The transition is confirmed live before the session is touched: a
		// success arriving after Cancel is discarded in full, commit included.
		if !f.c.finish(gen, StateSuccess) {
			return Result{State: f.c.state()}, nil
		}
		// Success is unconditional once the backend reports it; a session
		// persistence problem is logged, never rolled back into a failure.
		if err := f.fin.Commit(ctx, resp.Token); err != nil {
			f.log.Warn("session commit failed after successful login", zap.Error(err))
		}
		f.log.Info("login succeeded", zap.String("phone", maskPhone(f.creds.Phone)))
		return Result{State: StateSuccess}, nil
	}

	cls := classifier.Classify(classifier.FromResponse(resp))
	switch cls.Kind {
	case domain.KindVerificationRequired:
		f.gate = newGate(f.c, f.log, domain.PurposeLogin, f.creds.Phone,
			func(ctx context.Context, code string) (*domain.Response, error) {
				return f.gw.VerifyPhone(ctx, code, f.meta)
			},
			nil,
			f.commitToken,
			StateSuccess,
			f.gw.ResendLoginCode,
		)
		if !f.c.finish(gen, StateVerificationRequired) {
			return Result{State: f.c.state()}, nil
		}
		notice := cls.Message
		if notice == "" {
			notice = noticeCodeSent
		}
		return Result{State: StateVerificationRequired, Notice: notice}, nil

	case domain.KindAccountFrozen:
		// The generic banner is suppressed: the recovery surface takes over.
		f.recovery = newFrozenAccountRecovery(f.c, f.gw, f.log,
			domain.UnfreezeRequest{Phone: f.creds.Phone, Password: f.creds.Password},
			f.resubmit,
		)
		if !f.c.finish(gen, StateAccountFrozenRecovery) {
			return Result{State: f.c.state()}, nil
		}
		return Result{State: StateAccountFrozenRecovery}, nil

	default:
		if !f.c.finish(gen, StateFailed) {
			return Result{State: f.c.state()}, nil
		}
		return failure(StateFailed, cls), nil
	}
}

func (f *LoginFlow) commitToken(ctx context.Context, resp *domain.Response) {
	if err := f.fin.Commit(ctx, resp.Token); err != nil {
		f.log.Warn("session commit failed after verification", zap.Error(err))
	}
}

// SubmitCode forwards a one-time code to the active verification gate.
func (f *LoginFlow) SubmitCode(ctx context.Context, code string) (Result, error) {
	if f.gate == nil {
		return Result{State: f.c.state()}, autherror.ErrNoPendingVerification
	}
	return f.gate.SubmitCode(ctx, code)
}

// ResendCode requests a fresh login verification code.
func (f *LoginFlow) ResendCode(ctx context.Context) (Result, error) {
	if f.gate == nil {
		return Result{State: f.c.state()}, autherror.ErrNoPendingVerification
	}
	return f.gate.Resend(ctx)
}

// Pending exposes the active pending verification, if any.
func (f *LoginFlow) Pending() (domain.PendingVerification, bool) {
	if f.gate == nil {
		return domain.PendingVerification{}, false
	}
	return f.gate.Pending(), true
}

// Recovery exposes the frozen-account recovery surface, if active.
func (f *LoginFlow) Recovery() (*FrozenAccountRecovery, bool) {
	if f.recovery == nil {
		return nil, false
	}
	return f.recovery, true
}

// Cancel discards the flow instance: pending state is dropped, in-flight
// responses are ignored, nothing is sent to the backend.
func (f *LoginFlow) Cancel() {
	f.c.cancel()
	f.gate = nil
	f.recovery = nil
	f.creds = domain.Credentials{}
}

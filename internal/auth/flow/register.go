package flow

import (
	"context"

	"go.uber.org/zap"

	"github.com/mehmetcepni/bincard-auth/internal/auth/classifier"
	"github.com/mehmetcepni/bincard-auth/internal/auth/domain"
	autherror "github.com/mehmetcepni/bincard-auth/internal/errors"
)

// RegisterInput is the registration form content.
type RegisterInput struct {
	FirstName string
	LastName  string
	Phone     string
	Password  string
}

// RegisterFlow drives phone-verified registration: submit the form, then
// confirm the phone through the verification gate. Registration codes must be
// at least four digits.
type RegisterFlow struct {
	c   *core
	gw  domain.Gateway
	fin SessionCommitter
	log *zap.Logger

	meta  domain.DeviceMetadata
	phone string // normalized
	gate  *VerificationGate
}

func NewRegisterFlow(gw domain.Gateway, fin SessionCommitter, meta domain.DeviceMetadata, log *zap.Logger) *RegisterFlow {
	return &RegisterFlow{c: newCore(), gw: gw, fin: fin, meta: meta, log: log}
}

// State returns the flow's current state.
func (f *RegisterFlow) State() State {
	return f.c.state()
}

// Submit validates and submits the registration form. Success (or a
// phone-not-verified response) opens the verification gate.
func (f *RegisterFlow) Submit(ctx context.Context, in RegisterInput) (Result, error) {
	if in.FirstName == "" || in.LastName == "" {
		return Result{State: f.c.state()}, autherror.ErrMissingName
	}
	creds := domain.Credentials{Phone: in.Phone, Password: in.Password}
	if err := creds.Validate(); err != nil {
		return Result{State: f.c.state()}, err
	}
	normalized, err := domain.NormalizePhone(in.Phone)
	if err != nil {
		return Result{State: f.c.state()}, err
	}

	gen, err := f.c.begin(StateSubmitting, StateIdle, StateFailed)
	if err != nil {
		return Result{State: f.c.state()}, err
	}
	f.phone = normalized

	resp, callErr := f.gw.Register(ctx, in.FirstName, in.LastName, normalized, in.Password)
	if callErr != nil {
		cls := classifier.Classify(classifier.FromTransport(callErr))
		if !f.c.finish(gen, StateFailed) {
			return Result{State: f.c.state()}, nil
		}
		return failure(StateFailed, cls), nil
	}

	if resp.Success {
		return f.openGate(gen, resp.Message)
	}

	cls := classifier.Classify(classifier.FromResponse(resp))
	if cls.Kind == domain.KindVerificationRequired {
		return f.openGate(gen, cls.Message)
	}
	if !f.c.finish(gen, StateFailed) {
		return Result{State: f.c.state()}, nil
	}
	return failure(StateFailed, cls), nil
}

func (f *RegisterFlow) openGate(gen uint64, backendMsg string) (Result, error) {
	f.gate = newGate(f.c, f.log, domain.PurposeRegister, f.phone,
		func(ctx context.Context, code string) (*domain.Response, error) {
			return f.gw.VerifyPhone(ctx, code, f.meta)
		},
		nil,
		func(ctx context.Context, resp *domain.Response) {
			if resp.Token == "" {
				// Some backend versions require a separate login after
				// registration; nothing to commit then.
				return
			}
			if err := f.fin.Commit(ctx, resp.Token); err != nil {
				f.log.Warn("session commit failed after registration", zap.Error(err))
			}
		},
		StateSuccess,
		f.gw.ResendRegisterCode,
	)
	if !f.c.finish(gen, StateVerificationRequired) {
		return Result{State: f.c.state()}, nil
	}
	notice := backendMsg
	if notice == "" {
		notice = noticeCodeSent
	}
	f.log.Info("registration submitted, verification pending", zap.String("phone", maskPhone(f.phone)))
	return Result{State: StateVerificationRequired, Notice: notice}, nil
}

// SubmitCode forwards the registration code to the gate.
func (f *RegisterFlow) SubmitCode(ctx context.Context, code string) (Result, error) {
	if f.gate == nil {
		return Result{State: f.c.state()}, autherror.ErrNoPendingVerification
	}
	return f.gate.SubmitCode(ctx, code)
}

// ResendCode requests a fresh registration code.
func (f *RegisterFlow) ResendCode(ctx context.Context) (Result, error) {
	if f.gate == nil {
		return Result{State: f.c.state()}, autherror.ErrNoPendingVerification
	}
	return f.gate.Resend(ctx)
}

// Pending exposes the active pending verification, if any.
func (f *RegisterFlow) Pending() (domain.PendingVerification, bool) {
	if f.gate == nil {
		return domain.PendingVerification{}, false
	}
	return f.gate.Pending(), true
}

// Cancel discards the flow instance.
func (f *RegisterFlow) Cancel() {
	f.c.cancel()
	f.gate = nil
	f.phone = ""
}

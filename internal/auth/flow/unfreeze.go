package flow

import (
	"context"

	"go.uber.org/zap"

	"github.com/mehmetcepni/bincard-auth/internal/auth/classifier"
	"github.com/mehmetcepni/bincard-auth/internal/auth/domain"
	autherror "github.com/mehmetcepni/bincard-auth/internal/errors"
)

// FrozenAccountRecovery is the inline reactivation sub-flow entered when a
// login attempt classifies as AccountFrozen. It carries the credentials that
// triggered the classification, prefilled, and on success replays the
// original login submit exactly once.
type FrozenAccountRecovery struct {
	c   *core
	gw  domain.Gateway
	log *zap.Logger

	prefill  domain.UnfreezeRequest
	replay   func(ctx context.Context) (Result, error)
	replayed bool
}

func newFrozenAccountRecovery(
	c *core,
	gw domain.Gateway,
	log *zap.Logger,
	prefill domain.UnfreezeRequest,
	replay func(ctx context.Context) (Result, error),
) *FrozenAccountRecovery {
	return &FrozenAccountRecovery{c: c, gw: gw, log: log, prefill: prefill, replay: replay}
}

// Request returns the prefilled unfreeze request for the recovery surface.
func (r *FrozenAccountRecovery) Request() domain.UnfreezeRequest {
	return r.prefill
}

// Submit sends the reactivation request. On failure the recovery surface
// stays open and the message belongs to it, never to the generic banner. On
// success the stored credentials are resubmitted automatically, once.
func (r *FrozenAccountRecovery) Submit(ctx context.Context, req domain.UnfreezeRequest) (Result, error) {
	if req.Phone == "" || req.Password == "" {
		return Result{State: r.c.state()}, autherror.ErrMissingUnfreezeFields
	}

	gen, err := r.c.begin(StateUnfreezing, StateAccountFrozenRecovery)
	if err != nil {
		return Result{State: r.c.state()}, err
	}

	resp, callErr := r.gw.UnfreezeAccount(ctx, req)
	if callErr != nil {
		return r.reopen(gen, classifier.Classify(classifier.FromTransport(callErr))), nil
	}
	if !resp.Success {
		return r.reopen(gen, classifier.Classify(classifier.FromResponse(resp))), nil
	}

	if !r.c.finish(gen, StateAccountFrozenRecovery) {
		return Result{State: r.c.state()}, nil
	}
	r.log.Info("account unfrozen", zap.String("phone", maskPhone(req.Phone)))

	if r.replayed {
		// The automatic retry fires at most once per recovery instance.
		return Result{State: r.c.state()}, nil
	}
	r.replayed = true
	return r.replay(ctx)
}

func (r *FrozenAccountRecovery) reopen(gen uint64, cls domain.ErrorClassification) Result {
	if !r.c.finish(gen, StateAccountFrozenRecovery) {
		return Result{State: r.c.state()}
	}
	return failure(StateAccountFrozenRecovery, cls)
}

package flow

import (
	"context"

	"go.uber.org/zap"

	"github.com/mehmetcepni/bincard-auth/internal/auth/classifier"
	"github.com/mehmetcepni/bincard-auth/internal/auth/domain"
)

// ResendController issues "resend code" requests for a pending verification.
// It shares the flow's single-flight guard: a resend is rejected while any
// submit, verify, resend or unfreeze call is in flight. There is no minimum
// inter-resend interval; only concurrency is guarded.
type ResendController struct {
	c     *core
	log   *zap.Logger
	phone string
	send  func(ctx context.Context, phone string) (*domain.Response, error)
}

func newResendController(
	c *core,
	log *zap.Logger,
	phone string,
	send func(ctx context.Context, phone string) (*domain.Response, error),
) *ResendController {
	return &ResendController{c: c, log: log, phone: phone, send: send}
}

// Resend requests a fresh code for the pending phone. The gate stays open
// while the request is in flight.
func (r *ResendController) Resend(ctx context.Context) (Result, error) {
	gen, err := r.c.beginHold(StateVerificationRequired)
	if err != nil {
		return Result{State: r.c.state()}, err
	}

	resp, err := r.send(ctx, r.phone)
	if !r.c.release(gen) {
		return Result{State: r.c.state()}, nil
	}
	if err != nil {
		return failure(r.c.state(), classifier.Classify(classifier.FromTransport(err))), nil
	}
	if !resp.Success {
		return failure(r.c.state(), classifier.Classify(classifier.FromResponse(resp))), nil
	}

	r.log.Info("verification code resent", zap.String("phone", maskPhone(r.phone)))
	return Result{State: r.c.state(), Notice: noticeCodeResent}, nil
}

// maskPhone keeps only the last two digits for log output.
func maskPhone(phone string) string {
	if len(phone) <= 2 {
		return "***"
	}
	return "***" + phone[len(phone)-2:]
}

// Package session owns the access token: the only cross-flow shared state.
// It is written exclusively through Finalizer.Commit and Finalizer.Clear.
package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mehmetcepni/bincard-auth/internal/auth/domain"
	autherror "github.com/mehmetcepni/bincard-auth/internal/errors"
)

const pushRegisterTimeout = 10 * time.Second

// Finalizer commits and clears the session token. Push-token registration
// runs as an asynchronous best-effort observer after a commit; its failure
// clears only its own marker, never the session.
type Finalizer struct {
	store domain.TokenStore
	push  domain.PushRegistrar // nil disables the observer
	log   *zap.Logger

	mu             sync.Mutex
	pushRegistered bool
	pushDone       chan struct{} // closed when the latest registration settles
}

func NewFinalizer(store domain.TokenStore, push domain.PushRegistrar, log *zap.Logger) *Finalizer {
	return &Finalizer{store: store, push: push, log: log}
}

// Commit stores the access token and kicks off push registration.
func (f *Finalizer) Commit(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return autherror.ErrEmptyAccessToken
	}
	if err := f.store.Save(ctx, accessToken); err != nil {
		return err
	}
	if f.push != nil {
		done := make(chan struct{})
		f.mu.Lock()
		f.pushDone = done
		f.mu.Unlock()
		go f.registerPush(accessToken, done)
	}
	return nil
}

func (f *Finalizer) registerPush(accessToken string, done chan struct{}) {
	defer close(done)

	ctx, cancel := context.WithTimeout(context.Background(), pushRegisterTimeout)
	defer cancel()

	err := f.push.Register(ctx, accessToken)

	f.mu.Lock()
	f.pushRegistered = err == nil
	f.mu.Unlock()

	if err != nil {
		f.log.Warn("push token registration failed", zap.Error(err))
	}
}

// Clear removes the session token and the push registration marker.
func (f *Finalizer) Clear(ctx context.Context) error {
	f.mu.Lock()
	f.pushRegistered = false
	f.mu.Unlock()
	return f.store.Delete(ctx)
}

// IsAuthenticated reports whether a session token is present.
func (f *Finalizer) IsAuthenticated(ctx context.Context) bool {
	token, err := f.store.Load(ctx)
	return err == nil && token != ""
}

// Token returns the current session token ("" when unauthenticated).
func (f *Finalizer) Token(ctx context.Context) (string, error) {
	return f.store.Load(ctx)
}

// PushRegistered reports whether the last push registration succeeded,
// waiting for it to settle first.
func (f *Finalizer) PushRegistered() bool {
	f.mu.Lock()
	done := f.pushDone
	f.mu.Unlock()
	if done != nil {
		<-done
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pushRegistered
}

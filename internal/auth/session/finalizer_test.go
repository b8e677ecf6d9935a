package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mehmetcepni/bincard-auth/internal/auth/session"
	autherror "github.com/mehmetcepni/bincard-auth/internal/errors"
)

// fakeRegistrar records push registrations and can be told to fail.
type fakeRegistrar struct {
	mu     sync.Mutex
	err    error
	tokens []string
}

func (r *fakeRegistrar) Register(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.tokens = append(r.tokens, token)
	return nil
}

func (r *fakeRegistrar) registered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.tokens...)
}

func TestFinalizer_CommitAndClear(t *testing.T) {
	fin := session.NewFinalizer(session.NewMemoryStore(), nil, zap.NewNop())
	ctx := context.Background()

	assert.False(t, fin.IsAuthenticated(ctx))

	require.NoError(t, fin.Commit(ctx, "token-1"))
	assert.True(t, fin.IsAuthenticated(ctx))

	token, err := fin.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	require.NoError(t, fin.Clear(ctx))
	assert.False(t, fin.IsAuthenticated(ctx))
}

func TestFinalizer_EmptyTokenRejected(t *testing.T) {
	fin := session.NewFinalizer(session.NewMemoryStore(), nil, zap.NewNop())
	err := fin.Commit(context.Background(), "")
	assert.ErrorIs(t, err, autherror.ErrEmptyAccessToken)
}

func TestFinalizer_PushRegistrationObservesCommit(t *testing.T) {
	reg := &fakeRegistrar{}
	fin := session.NewFinalizer(session.NewMemoryStore(), reg, zap.NewNop())

	require.NoError(t, fin.Commit(context.Background(), "token-1"))

	assert.True(t, fin.PushRegistered())
	assert.Equal(t, []string{"token-1"}, reg.registered())
}

// A push registration failure clears only its own marker, never the session.
func TestFinalizer_PushFailureDoesNotTouchSession(t *testing.T) {
	reg := &fakeRegistrar{err: errors.New("fcm unreachable")}
	fin := session.NewFinalizer(session.NewMemoryStore(), reg, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, fin.Commit(ctx, "token-1"))

	assert.False(t, fin.PushRegistered())
	assert.True(t, fin.IsAuthenticated(ctx))

	token, err := fin.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
}

// blockingRegistrar holds each registration until released.
type blockingRegistrar struct {
	started chan struct{}
	release chan struct{}
}

func (r *blockingRegistrar) Register(context.Context, string) error {
	r.started <- struct{}{}
	<-r.release
	return nil
}

// A second Commit may land while another goroutine is still waiting on the
// first registration to settle; both waiters must return cleanly.
func TestFinalizer_RecommitWhileWaitingOnPush(t *testing.T) {
	reg := &blockingRegistrar{started: make(chan struct{}, 2), release: make(chan struct{})}
	fin := session.NewFinalizer(session.NewMemoryStore(), reg, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, fin.Commit(ctx, "token-1"))
	<-reg.started

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.True(t, fin.PushRegistered())
	}()

	require.NoError(t, fin.Commit(ctx, "token-2"))
	<-reg.started

	close(reg.release)
	wg.Wait()

	assert.True(t, fin.PushRegistered())
	token, err := fin.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)
}

func TestFinalizer_ClearResetsPushMarker(t *testing.T) {
	reg := &fakeRegistrar{}
	fin := session.NewFinalizer(session.NewMemoryStore(), reg, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, fin.Commit(ctx, "token-1"))
	require.True(t, fin.PushRegistered())

	require.NoError(t, fin.Clear(ctx))
	assert.False(t, fin.PushRegistered())
}

func TestMemoryStore(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save(ctx, "token-1"))
	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	require.NoError(t, store.Delete(ctx))
	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

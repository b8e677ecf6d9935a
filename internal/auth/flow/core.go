package flow

import (
	"sync"

	autherror "github.com/mehmetcepni/bincard-auth/internal/errors"
)

// core holds the state, the single-flight guard and the cancellation
// generation shared by a flow instance and its sub-components (gate,
// recovery, resend controller).
//
// At most one of {submit, verify, resend, unfreeze, reset} may be in flight
// per instance; concurrent invocations are rejected, never queued. Cancel
// bumps the generation so that a response arriving for a discarded flow is
// dropped instead of being applied to dead state.
type core struct {
	mu   sync.Mutex
	st   State
	busy bool
	gen  uint64
}

func newCore() *core {
	return &core{st: StateIdle}
}

func (c *core) state() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st
}

// begin transitions to next if the flow is not busy and currently in one of
// from. It returns the generation the caller must present to finish.
func (c *core) begin(next State, from ...State) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.admit(from); err != nil {
		return 0, err
	}
	c.st = next
	c.busy = true
	return c.gen, nil
}

// beginHold marks the flow busy without changing state. Used by resend, which
// keeps the gate open while its request is in flight.
func (c *core) beginHold(from ...State) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.admit(from); err != nil {
		return 0, err
	}
	c.busy = true
	return c.gen, nil
}

func (c *core) admit(from []State) error {
	if c.st.Terminal() {
		return autherror.ErrFlowFinished
	}
	if c.busy {
		return autherror.ErrRequestInFlight
	}
	for _, s := range from {
		if c.st == s {
			return nil
		}
	}
	return autherror.ErrWrongState
}

// finish completes the operation begun under gen, transitioning to next.
// It reports false when the flow was cancelled in the meantime; the caller
// must then discard its result.
func (c *core) finish(gen uint64, next State) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.busy = false
	c.st = next
	return true
}

// release completes a beginHold without a state change.
func (c *core) release(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.busy = false
	return true
}

// cancel discards the flow instance state: any in-flight completion becomes
// stale and the machine returns to Idle. A terminal flow stays terminal.
func (c *core) cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.Terminal() {
		return
	}
	c.gen++
	c.busy = false
	c.st = StateIdle
}

package flow

// State is the position of a flow instance in its state machine. Illegal
// concurrent transitions are unrepresentable: an operation first moves the
// flow into its busy state (Submitting, Verifying, Unfreezing, Resetting)
// under the lock, and a second caller finding a busy state is rejected.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateVerificationRequired
	StateVerifying
	StateAccountFrozenRecovery
	StateUnfreezing
	// StateTokenReady: a password-reset flow holds an exchanged reset token
	// and is waiting for the new password.
	StateTokenReady
	StateResetting
	StateFailed
	StateSuccess
)

var stateNames = map[State]string{
	StateIdle:                  "idle",
	StateSubmitting:            "submitting",
	StateVerificationRequired:  "verification_required",
	StateVerifying:             "verifying",
	StateAccountFrozenRecovery: "account_frozen_recovery",
	StateUnfreezing:            "unfreezing",
	StateTokenReady:            "token_ready",
	StateResetting:             "resetting",
	StateFailed:                "failed",
	StateSuccess:               "success",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// Terminal reports whether the flow can accept no further operations.
// Only Success is terminal; Failed always returns control to the user.
func (s State) Terminal() bool {
	return s == StateSuccess
}

package flow

import "github.com/mehmetcepni/bincard-auth/internal/auth/domain"

// Result is what a flow operation hands back to the presentation layer: the
// state reached, an optional informational notice (toast-equivalent) and, on
// failure, the normalized kind with a user-facing message.
type Result struct {
	State   State
	Kind    domain.ErrorKind
	Message string
	Notice  string
}

// Failed reports whether the result carries a user-facing failure.
func (r Result) Failed() bool {
	return r.Kind != ""
}

func failure(st State, cls domain.ErrorClassification) Result {
	return Result{State: st, Kind: cls.Kind, Message: userMessage(cls)}
}

package domain

// ErrorKind is the normalized category of a backend failure. The backend
// exposes no machine-readable error codes, so kinds are derived from status
// codes and message phrases (see internal/auth/classifier).
type ErrorKind string

const (
	KindVerificationRequired ErrorKind = "verification_required"
	KindAccountFrozen        ErrorKind = "account_frozen"
	KindUserNotFound         ErrorKind = "user_not_found"
	KindIncorrectPassword    ErrorKind = "incorrect_password"
	KindInvalidCode          ErrorKind = "invalid_code"
	KindExpiredCode          ErrorKind = "expired_code"
	KindUnauthorized         ErrorKind = "unauthorized"
	KindServerFault          ErrorKind = "server_fault"
	KindNetworkFault         ErrorKind = "network_fault"
	KindUnknown              ErrorKind = "unknown"
)

// ErrorClassification is produced per failed call and consumed immediately by
// the state machine; it is never stored.
type ErrorClassification struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
}

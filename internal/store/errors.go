package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTelephoneAlreadyExists is returned when an insert fails because an
	// identity with the same telephone already exists.
	ErrTelephoneAlreadyExists = errors.New("telephone already exists")

	// ErrIdentityNotFound is returned when a lookup matches no identity.
	ErrIdentityNotFound = errors.New("no identity was found")

	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrUnsupportedDSN is returned when the DSN matches no known dialect.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Connect stages reported in [ConnectionError.Op].
const (
	OpDetect  = "detect dialect"
	OpOpen    = "open"
	OpPing    = "ping"
	OpMigrate = "migrate"
)

// ConnectionError reports a failed attempt to establish or re-validate the
// datastore pool. Retryable tells the caller whether another attempt may
// succeed without operator intervention.
type ConnectionError struct {
	Op        string
	Retryable bool
	Err       error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect: %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a [ConnectionError] marked retryable.
func IsRetryable(err error) bool {
	var connErr *ConnectionError
	return errors.As(err, &connErr) && connErr.Retryable
}

package service

import (
	"errors"
	"fmt"
)

// Kind classifies why a credential operation failed.
type Kind int

const (
	// KindUnknown is reported by [KindOf] for errors that did not come from
	// this package.
	KindUnknown Kind = iota
	// KindConflict: the telephone is already registered.
	KindConflict
	// KindNotFound: no identity matches the telephone and secret. Unknown
	// telephone and wrong secret are deliberately the same kind.
	KindNotFound
	// KindInvalid: the input failed validation.
	KindInvalid
	// KindUnavailable: the datastore could not serve the request.
	KindUnavailable
	// KindNoConnection: no handle was available to run the operation.
	KindNoConnection
)

func (k Kind) String() string {
	switch k {
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindUnavailable:
		return "unavailable"
	case KindNoConnection:
		return "no connection"
	default:
		return "unknown"
	}
}

// Sentinels matched with [errors.Is] against any [OperationError] of the same
// kind.
var (
	ErrConflict     = &OperationError{Kind: KindConflict}
	ErrNotFound     = &OperationError{Kind: KindNotFound}
	ErrInvalid      = &OperationError{Kind: KindInvalid}
	ErrUnavailable  = &OperationError{Kind: KindUnavailable}
	ErrNoConnection = &OperationError{Kind: KindNoConnection}
)

// OperationError is the error returned by every [CredentialService] method.
type OperationError struct {
	Kind Kind
	Err  error
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an OperationError of the same kind.
func (e *OperationError) Is(target error) bool {
	t, ok := target.(*OperationError)
	return ok && t.Kind == e.Kind
}

func newOperationError(kind Kind, err error) *OperationError {
	return &OperationError{Kind: kind, Err: err}
}

// KindOf returns the kind of the first [OperationError] in err's chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return KindUnknown
}

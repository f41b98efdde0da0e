// error.go defines the errors stages report to their pollers.

package types

import (
	"errors"
	"fmt"
)

// ErrIO is a transport/IO failure carrying the platform error category.
type ErrIO struct {
	Kind IOKind
	Err  error
}

// NewErrIO classifies err and wraps it into ErrIO.
func NewErrIO(err error) ErrIO {
	return ErrIO{
		Kind: IOKindOf(err),
		Err:  err,
	}
}

func (e ErrIO) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("I/O error: %s", e.Kind)
	}
	return fmt.Sprintf("I/O error: %s: %v", e.Kind, e.Err)
}

func (e ErrIO) Unwrap() error {
	return e.Err
}

// ErrUnknown is a failure of a collaborator which does not expose
// a finer-grained cause.
type ErrUnknown struct {
	Err error
}

func (e ErrUnknown) Error() string {
	if e.Err == nil {
		return "unknown error"
	}
	return fmt.Sprintf("unknown error: %v", e.Err)
}

func (e ErrUnknown) Unwrap() error {
	return e.Err
}

// IsIOKind reports whether err contains an ErrIO of the given kind.
func IsIOKind(err error, kind IOKind) bool {
	var errIO ErrIO
	if !errors.As(err, &errIO) {
		return false
	}
	return errIO.Kind == kind
}

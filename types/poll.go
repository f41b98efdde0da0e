// poll.go defines the outcome of a pull operation.

package types

import (
	"fmt"
)

// Poll is the outcome of a poll: either Ready with a value, or Pending.
//
// Pending means no progress can be made now; the stage that returned it has
// arranged for the waker found in the context to be woken later.
type Poll[T any] struct {
	Value   T
	IsReady bool
}

// Ready returns a ready Poll carrying the value.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{Value: v, IsReady: true}
}

// Pending returns a not-ready Poll.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// IsPending is the negation of IsReady.
func (p Poll[T]) IsPending() bool {
	return !p.IsReady
}

func (p Poll[T]) String() string {
	if !p.IsReady {
		return "Pending"
	}
	return fmt.Sprintf("Ready(%v)", p.Value)
}

// Unit is the value type of polls which carry no value.
type Unit = struct{}

// ReadyUnit is a shorthand for Ready(Unit{}).
func ReadyUnit() Poll[Unit] {
	return Ready(Unit{})
}

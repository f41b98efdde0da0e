// send_result.go defines the outcome of a push operation.

package types

import (
	"fmt"

	"github.com/xaionaro-go/typing"
)

// SendResult is the outcome of a push: the item was either accepted
// (ownership moved to the receiving stage) or rejected and handed back.
//
// A rejected item must be retried as is; it is never replaced by another one.
type SendResult[T any] struct {
	NotReady typing.Optional[T]
}

// Accepted returns a SendResult meaning the item was consumed.
func Accepted[T any]() SendResult[T] {
	return SendResult[T]{}
}

// Rejected returns a SendResult handing the item back to the caller.
func Rejected[T any](item T) SendResult[T] {
	return SendResult[T]{NotReady: typing.Opt(item)}
}

func (r SendResult[T]) IsAccepted() bool {
	return !r.NotReady.IsSet()
}

// RejectedItem returns the handed-back item, if the push was rejected.
func (r SendResult[T]) RejectedItem() (T, bool) {
	if !r.NotReady.IsSet() {
		var zero T
		return zero, false
	}
	return r.NotReady.Get(), true
}

func (r SendResult[T]) String() string {
	if item, ok := r.RejectedItem(); ok {
		return fmt.Sprintf("Rejected(%v)", item)
	}
	return "Accepted"
}

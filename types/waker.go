// waker.go defines how a Pending stage gets its poller invoked again.

package types

import (
	"context"
)

// Waker notifies the driver of a task that the task should be polled again.
//
// Wake may be called from any goroutine, any number of times, including
// while the task is being polled.
type Waker interface {
	Wake()
}

// WakerFunc adapts a function into a Waker.
type WakerFunc func()

func (fn WakerFunc) Wake() {
	fn()
}

type noopWaker struct{}

func (noopWaker) Wake() {}

type ctxKeyWaker struct{}

// CtxWithWaker returns a context carrying the waker of the task being polled.
func CtxWithWaker(ctx context.Context, w Waker) context.Context {
	return context.WithValue(ctx, ctxKeyWaker{}, w)
}

// WakerFromCtx returns the waker of the task being polled, or a no-op waker
// if the context has none.
func WakerFromCtx(ctx context.Context) Waker {
	w, ok := ctx.Value(ctxKeyWaker{}).(Waker)
	if !ok || w == nil {
		return noopWaker{}
	}
	return w
}

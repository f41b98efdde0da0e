// run.go implements the blocking executor of the poll protocol.

// Package driver runs Futures to completion on goroutines.
//
// Nothing else in framepipe blocks or spawns goroutines: stages only return
// Pending and arrange a wake-up, and the driver is what actually waits.
package driver

import (
	"context"

	"github.com/xaionaro-go/framepipe/logger"
	"github.com/xaionaro-go/framepipe/types"
)

// FutureFunc adapts a poll function into a Future.
type FutureFunc[T any] func(ctx context.Context) (types.Poll[T], error)

var _ types.Future[struct{}] = FutureFunc[struct{}](nil)

func (fn FutureFunc[T]) Poll(ctx context.Context) (types.Poll[T], error) {
	return fn(ctx)
}

// Run polls the Future until it is Ready, it fails or the context is done.
//
// Between Pending polls it sleeps until the waker passed in the context is
// woken, so a Future which returns Pending without arranging a wake-up
// blocks Run until the context is done.
func Run[T any](
	ctx context.Context,
	fut types.Future[T],
) (_ret T, _err error) {
	logger.Tracef(ctx, "Run[%T]", fut)
	defer func() { logger.Tracef(ctx, "/Run[%T]: %v", fut, _err) }()

	w := newChangeWaker()
	pollCtx := types.CtxWithWaker(ctx, w)
	for {
		// loaded before polling, so a wake-up during the poll is not lost
		wakeCh := w.WaitChan()

		p, err := fut.Poll(pollCtx)
		if err != nil {
			return _ret, err
		}
		if p.IsReady {
			return p.Value, nil
		}

		select {
		case <-ctx.Done():
			return _ret, ctx.Err()
		case <-wakeCh:
		}
	}
}

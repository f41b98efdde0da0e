package driver

import (
	"context"

	"github.com/xaionaro-go/framepipe/helpers/closuresignaler"
	"github.com/xaionaro-go/framepipe/logger"
	"github.com/xaionaro-go/framepipe/types"
	"github.com/xaionaro-go/observability"
)

// Task is a Future being run on its own goroutine.
type Task[T any] struct {
	done   *closuresignaler.ClosureSignaler
	result T
	err    error
}

// Spawn runs the Future on a new goroutine. The Future must not be polled
// by anybody else afterwards.
func Spawn[T any](
	ctx context.Context,
	fut types.Future[T],
) *Task[T] {
	t := &Task[T]{
		done: closuresignaler.New(),
	}
	observability.Go(ctx, func(ctx context.Context) {
		defer t.done.Close(ctx)
		t.result, t.err = Run(ctx, fut)
		logger.Debugf(ctx, "task %T finished: %v", fut, t.err)
	})
	return t
}

// CloseChan is closed when the task is finished.
func (t *Task[T]) CloseChan() <-chan struct{} {
	return t.done.CloseChan()
}

func (t *Task[T]) IsFinished() bool {
	return t.done.IsClosed()
}

// Wait blocks until the task is finished and returns its result. If ctx is
// done first, the task keeps running and ctx.Err() is returned.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case <-t.done.CloseChan():
		return t.result, t.err
	}
}

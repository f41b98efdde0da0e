package types

import (
	"context"
)

// Future is a one-shot asynchronous operation driven by repeated polling.
//
// Once Poll returned Ready, the Future is spent and must not be polled again.
type Future[T any] interface {
	Poll(ctx context.Context) (Poll[T], error)
}

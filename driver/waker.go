package driver

import (
	"github.com/go-ng/xatomic"
	"github.com/xaionaro-go/framepipe/types"
)

// changeWaker wakes whoever waits on the channel loaded before the wake-up:
// every Wake closes the current channel and installs a fresh one.
type changeWaker struct {
	ChangeChan *chan struct{}
}

var _ types.Waker = (*changeWaker)(nil)

func newChangeWaker() *changeWaker {
	return &changeWaker{
		ChangeChan: ptr(make(chan struct{})),
	}
}

func (w *changeWaker) Wake() {
	close(*xatomic.SwapPointer(&w.ChangeChan, ptr(make(chan struct{}))))
}

func (w *changeWaker) WaitChan() <-chan struct{} {
	return *xatomic.LoadPointer(&w.ChangeChan)
}

func ptr[T any](in T) *T {
	return &in
}

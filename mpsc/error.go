package mpsc

import (
	"errors"
)

var (
	// ErrDisconnected means the receiving end of the channel is closed.
	ErrDisconnected = errors.New("the receiver is disconnected")

	// ErrSenderClosed means the sender handle was already closed.
	ErrSenderClosed = errors.New("the sender is closed")
)

package mpsc

import (
	"context"

	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/logger"
	"github.com/xaionaro-go/framepipe/node"
	"github.com/xaionaro-go/framepipe/types"
	"github.com/xaionaro-go/xsync"
)

// Receiver is the receiving end of a channel.
//
// It reports the end of the stream once every Sender is closed and the
// buffered frames are drained; the end of the stream is permanent.
type Receiver struct {
	channel *channel
	ended   bool
}

var (
	_ node.Source  = (*Receiver)(nil)
	_ types.Closer = (*Receiver)(nil)
)

func newReceiver(ch *channel) *Receiver {
	return &Receiver{
		channel: ch,
	}
}

func (r *Receiver) String() string {
	return "mpsc.Receiver"
}

func (r *Receiver) Poll(
	ctx context.Context,
) (_ret types.Poll[frame.Optional], _err error) {
	logger.Tracef(ctx, "Poll[%s]", r)
	defer func() { logger.Tracef(ctx, "/Poll[%s]: %v", r, _ret) }()

	var wakers []types.Waker
	defer func() { wake(wakers...) }()
	r.channel.Locker.Do(xsync.WithNoLogging(ctx, true), func() {
		ch := r.channel
		switch {
		case r.ended:
			_ret = types.Ready(frame.EndOfStream())
		case ch.Len > 0:
			_ret = types.Ready(frame.Some(ch.popLocked()))
			wakers = ch.takeSenderWakersLocked()
		case ch.Senders == 0 || ch.ReceiverClosed:
			r.ended = true
			_ret = types.Ready(frame.EndOfStream())
		default:
			ch.ReceiverWaker = types.WakerFromCtx(ctx)
			_ret = types.Pending[frame.Optional]()
		}
	})
	return
}

// Close disconnects the receiver: buffered frames are discarded and further
// sends fail with ErrDisconnected.
func (r *Receiver) Close(ctx context.Context) error {
	logger.Debugf(ctx, "Close[%s]", r)
	var wakers []types.Waker
	r.channel.Locker.Do(xsync.WithNoLogging(ctx, true), func() {
		ch := r.channel
		ch.ReceiverClosed = true
		for ch.Len > 0 {
			ch.popLocked()
		}
		wakers = ch.takeSenderWakersLocked()
	})
	wake(wakers...)
	return nil
}

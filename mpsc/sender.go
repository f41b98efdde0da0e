package mpsc

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/framepipe/driver"
	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/logger"
	"github.com/xaionaro-go/framepipe/node"
	"github.com/xaionaro-go/framepipe/types"
	"github.com/xaionaro-go/xsync"
	"go.uber.org/atomic"
)

var nextSenderID atomic.Uint64

// Sender is a sending end of a channel. A Sender handle is used by one
// goroutine at a time; use Clone to get a handle for another producer.
type Sender struct {
	channel *channel
	id      uint64
	closed  bool
}

var _ node.Sink = (*Sender)(nil)

func newSender(ch *channel) *Sender {
	return &Sender{
		channel: ch,
		id:      nextSenderID.Inc(),
	}
}

func (s *Sender) String() string {
	return fmt.Sprintf("mpsc.Sender(%d)", s.id)
}

// Clone returns another handle to the same channel. The receiver reports
// the end of the stream only after every handle is closed.
func (s *Sender) Clone(ctx context.Context) (*Sender, error) {
	return xsync.DoR2(xsync.WithNoLogging(ctx, true), &s.channel.Locker, func() (*Sender, error) {
		if s.closed {
			return nil, types.ErrUnknown{Err: ErrSenderClosed}
		}
		s.channel.Senders++
		return newSender(s.channel), nil
	})
}

// StartSend puts the frame into the channel, or hands it back if the
// channel is full; in the latter case the task is woken once there is room.
func (s *Sender) StartSend(
	ctx context.Context,
	f frame.Frame,
) (_ret types.SendResult[frame.Frame], _err error) {
	logger.Tracef(ctx, "StartSend[%s]: %s", s, f)
	defer func() { logger.Tracef(ctx, "/StartSend[%s]: %s %v", s, _ret, _err) }()

	var w types.Waker
	defer func() { wake(w) }()
	s.channel.Locker.Do(xsync.WithNoLogging(ctx, true), func() {
		ch := s.channel
		switch {
		case s.closed:
			_err = types.ErrUnknown{Err: ErrSenderClosed}
		case ch.ReceiverClosed:
			_err = types.ErrUnknown{Err: ErrDisconnected}
		case ch.isFullLocked():
			ch.SenderWakers = append(ch.SenderWakers, types.WakerFromCtx(ctx))
			_ret = types.Rejected(f)
		default:
			ch.pushLocked(f)
			w = ch.takeReceiverWakerLocked()
			_ret = types.Accepted[frame.Frame]()
		}
	})
	return
}

// PollComplete is always Ready: an accepted frame is already visible
// to the receiver.
func (s *Sender) PollComplete(ctx context.Context) (types.Poll[types.Unit], error) {
	return types.ReadyUnit(), nil
}

// PollClose releases this handle. It is idempotent.
func (s *Sender) PollClose(ctx context.Context) (types.Poll[types.Unit], error) {
	logger.Debugf(ctx, "PollClose[%s]", s)
	var w types.Waker
	s.channel.Locker.Do(xsync.WithNoLogging(ctx, true), func() {
		if s.closed {
			return
		}
		s.closed = true
		s.channel.Senders--
		if s.channel.Senders == 0 {
			w = s.channel.takeReceiverWakerLocked()
		}
	})
	wake(w)
	return types.ReadyUnit(), nil
}

// Send blocks until the frame is accepted.
func (s *Sender) Send(ctx context.Context, f frame.Frame) error {
	_, err := driver.Run[types.Unit](ctx, driver.FutureFunc[types.Unit](func(ctx context.Context) (types.Poll[types.Unit], error) {
		res, err := s.StartSend(ctx, f)
		if err != nil {
			return types.Poll[types.Unit]{}, err
		}
		if !res.IsAccepted() {
			return types.Pending[types.Unit](), nil
		}
		return types.ReadyUnit(), nil
	}))
	return err
}

// CloseAndWait releases this handle, blocking until it is done.
func (s *Sender) CloseAndWait(ctx context.Context) error {
	_, err := driver.Run[types.Unit](ctx, driver.FutureFunc[types.Unit](s.PollClose))
	return err
}

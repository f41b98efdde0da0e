// channel.go implements the state shared by all the ends of a channel.

// Package mpsc provides a bounded multi-producer single-consumer channel of
// frames, whose sending ends are Sinks and whose receiving end is a Source.
package mpsc

import (
	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/types"
	"github.com/xaionaro-go/xsync"
)

type channel struct {
	Locker xsync.Mutex

	// ring buffer
	Frames []frame.Frame
	Head   int
	Len    int

	Senders        uint
	ReceiverClosed bool
	ReceiverWaker  types.Waker
	SenderWakers   []types.Waker
}

// NewChannel returns the ends of a new channel buffering up to capacity
// frames. A zero capacity is treated as one.
func NewChannel(capacity uint) (*Sender, *Receiver) {
	if capacity == 0 {
		capacity = 1
	}
	ch := &channel{
		Frames:  make([]frame.Frame, capacity),
		Senders: 1,
	}
	return newSender(ch), newReceiver(ch)
}

func (ch *channel) isFullLocked() bool {
	return ch.Len == len(ch.Frames)
}

func (ch *channel) pushLocked(f frame.Frame) {
	ch.Frames[(ch.Head+ch.Len)%len(ch.Frames)] = f
	ch.Len++
}

func (ch *channel) popLocked() frame.Frame {
	f := ch.Frames[ch.Head]
	ch.Frames[ch.Head] = frame.Frame{}
	ch.Head = (ch.Head + 1) % len(ch.Frames)
	ch.Len--
	return f
}

// takeReceiverWakerLocked returns the waker to be woken once the lock
// is released.
func (ch *channel) takeReceiverWakerLocked() types.Waker {
	w := ch.ReceiverWaker
	ch.ReceiverWaker = nil
	return w
}

func (ch *channel) takeSenderWakersLocked() []types.Waker {
	w := ch.SenderWakers
	ch.SenderWakers = nil
	return w
}

func wake(wakers ...types.Waker) {
	for _, w := range wakers {
		if w != nil {
			w.Wake()
		}
	}
}

package node_test

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/node"
	"github.com/xaionaro-go/framepipe/types"
	"github.com/xaionaro-go/typing"
)

// dummySink rejects frames at random and keeps its close Pending for a
// while, recording every call.
type dummySink struct {
	Rand       *rand.Rand
	RejectRate float64
	ClosePolls int

	Frames            []frame.Frame
	StartSendCount    int
	RejectedCount     int
	PollCompleteCount int
	PollCloseCount    int
	CloseReadyCount   int

	LastRejected typing.Optional[frame.Frame]
	Violations   []string
}

var _ node.Sink = (*dummySink)(nil)

func (s *dummySink) String() string {
	return "dummySink"
}

func (s *dummySink) StartSend(
	ctx context.Context,
	f frame.Frame,
) (types.SendResult[frame.Frame], error) {
	s.StartSendCount++
	if s.CloseReadyCount > 0 {
		s.Violations = append(s.Violations, fmt.Sprintf("StartSend(%s) after close", f))
	}
	if s.LastRejected.IsSet() {
		if prev := s.LastRejected.Get(); prev != f {
			s.Violations = append(s.Violations, fmt.Sprintf("retried %s instead of %s", f, prev))
		}
		s.LastRejected = typing.Optional[frame.Frame]{}
	}
	if s.Rand != nil && s.Rand.Float64() < s.RejectRate {
		s.RejectedCount++
		s.LastRejected = typing.Opt(f)
		// room becomes available right away
		types.WakerFromCtx(ctx).Wake()
		return types.Rejected(f), nil
	}
	s.Frames = append(s.Frames, f)
	return types.Accepted[frame.Frame](), nil
}

func (s *dummySink) PollComplete(ctx context.Context) (types.Poll[types.Unit], error) {
	s.PollCompleteCount++
	return types.ReadyUnit(), nil
}

func (s *dummySink) PollClose(ctx context.Context) (types.Poll[types.Unit], error) {
	s.PollCloseCount++
	if s.CloseReadyCount > 0 {
		s.Violations = append(s.Violations, "PollClose after the close completed")
	}
	if s.PollCloseCount <= s.ClosePolls {
		types.WakerFromCtx(ctx).Wake()
		return types.Pending[types.Unit](), nil
	}
	s.CloseReadyCount++
	return types.ReadyUnit(), nil
}

// dummySource yields the frames, returning Pending (with an immediate
// wake-up) before each of them at random.
type dummySource struct {
	Rand        *rand.Rand
	PendingRate float64
	Frames      []frame.Frame
	Pos         int
	PollCount   int
}

var _ node.Source = (*dummySource)(nil)

func (s *dummySource) String() string {
	return "dummySource"
}

func (s *dummySource) Poll(ctx context.Context) (types.Poll[frame.Optional], error) {
	s.PollCount++
	if s.Pos >= len(s.Frames) {
		return types.Ready(frame.EndOfStream()), nil
	}
	if s.Rand != nil && s.Rand.Float64() < s.PendingRate {
		types.WakerFromCtx(ctx).Wake()
		return types.Pending[frame.Optional](), nil
	}
	f := s.Frames[s.Pos]
	s.Pos++
	return types.Ready(frame.Some(f)), nil
}

// dummyFilter is an identity Filter with a single slot which rejects
// pushes at random and checks that its poller never pushes anything but
// the rejected item while it is being retried.
type dummyFilter struct {
	Rand       *rand.Rand
	RejectRate float64

	Slot         typing.Optional[frame.Optional]
	LastRejected typing.Optional[frame.Optional]
	Violations   []string
}

var _ node.Filter = (*dummyFilter)(nil)

func (f *dummyFilter) String() string {
	return "dummyFilter"
}

func (f *dummyFilter) StartSend(
	ctx context.Context,
	in frame.Optional,
) (types.SendResult[frame.Optional], error) {
	if f.LastRejected.IsSet() {
		if prev := f.LastRejected.Get(); prev != in {
			f.Violations = append(f.Violations, fmt.Sprintf(
				"retried %s instead of %s",
				frame.OptionalString(in), frame.OptionalString(prev),
			))
		}
		f.LastRejected = typing.Optional[frame.Optional]{}
	}
	if f.Slot.IsSet() || (f.Rand != nil && f.Rand.Float64() < f.RejectRate) {
		f.LastRejected = typing.Opt(in)
		return types.Rejected(in), nil
	}
	f.Slot = typing.Opt(in)
	return types.Accepted[frame.Optional](), nil
}

func (f *dummyFilter) PollComplete(ctx context.Context) (types.Poll[frame.Optional], error) {
	if !f.Slot.IsSet() {
		if f.LastRejected.IsSet() {
			// the rejected item is to be retried right away
			types.WakerFromCtx(ctx).Wake()
		}
		return types.Pending[frame.Optional](), nil
	}
	out := f.Slot.Get()
	if out.IsSet() {
		f.Slot = typing.Optional[frame.Optional]{}
	}
	return types.Ready(out), nil
}

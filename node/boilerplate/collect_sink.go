package boilerplate

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/node"
	"github.com/xaionaro-go/framepipe/types"
)

// CollectSink accepts every frame and keeps it in Frames.
type CollectSink struct {
	Frames      []frame.Frame
	CloseCalls  int
	OnFrameFunc func(ctx context.Context, f frame.Frame)
}

var _ node.Sink = (*CollectSink)(nil)

func NewCollectSink() *CollectSink {
	return &CollectSink{}
}

func (s *CollectSink) String() string {
	return fmt.Sprintf("CollectSink(%d)", len(s.Frames))
}

func (s *CollectSink) StartSend(ctx context.Context, f frame.Frame) (types.SendResult[frame.Frame], error) {
	s.Frames = append(s.Frames, f)
	if s.OnFrameFunc != nil {
		s.OnFrameFunc(ctx, f)
	}
	return types.Accepted[frame.Frame](), nil
}

func (s *CollectSink) PollComplete(ctx context.Context) (types.Poll[types.Unit], error) {
	return types.ReadyUnit(), nil
}

func (s *CollectSink) PollClose(ctx context.Context) (types.Poll[types.Unit], error) {
	s.CloseCalls++
	return types.ReadyUnit(), nil
}

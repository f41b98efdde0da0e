package main

import (
	"context"
	"fmt"
	"io"

	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/node"
	"github.com/xaionaro-go/framepipe/types"
)

// printSink prints the PTS of every frame it receives.
type printSink struct {
	Output io.Writer
	Count  uint64
	Closed bool
}

var _ node.Sink = (*printSink)(nil)

func (s *printSink) String() string {
	return "printSink"
}

func (s *printSink) StartSend(ctx context.Context, f frame.Frame) (types.SendResult[frame.Frame], error) {
	if s.Closed {
		return types.SendResult[frame.Frame]{}, types.NewErrIO(io.ErrClosedPipe)
	}
	if _, err := fmt.Fprintf(s.Output, "%v\n", f.PTS()); err != nil {
		return types.SendResult[frame.Frame]{}, types.NewErrIO(err)
	}
	s.Count++
	return types.Accepted[frame.Frame](), nil
}

func (s *printSink) PollComplete(ctx context.Context) (types.Poll[types.Unit], error) {
	return types.ReadyUnit(), nil
}

func (s *printSink) PollClose(ctx context.Context) (types.Poll[types.Unit], error) {
	s.Closed = true
	return types.ReadyUnit(), nil
}

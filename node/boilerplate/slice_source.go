package boilerplate

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/node"
	"github.com/xaionaro-go/framepipe/types"
)

// SliceSource yields the given frames in order and then reports
// end-of-stream forever.
type SliceSource struct {
	Frames []frame.Frame
	Pos    int
}

var _ node.Source = (*SliceSource)(nil)

func NewSliceSource(frames ...frame.Frame) *SliceSource {
	return &SliceSource{Frames: frames}
}

func (s *SliceSource) String() string {
	return fmt.Sprintf("SliceSource(%d/%d)", s.Pos, len(s.Frames))
}

func (s *SliceSource) Poll(ctx context.Context) (types.Poll[frame.Optional], error) {
	if s.Pos >= len(s.Frames) {
		return types.Ready(frame.EndOfStream()), nil
	}
	f := s.Frames[s.Pos]
	s.Pos++
	return types.Ready(frame.Some(f)), nil
}

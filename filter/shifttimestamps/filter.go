// Package shifttimestamps provides a Filter adding a constant offset to PTS.
package shifttimestamps

import (
	"context"
	"fmt"
	"time"

	"github.com/xaionaro-go/framepipe/filter"
	"github.com/xaionaro-go/framepipe/frame"
)

type Mapper struct {
	Offset time.Duration
}

func (m Mapper) String() string {
	return fmt.Sprintf("ShiftTimestamps(%v)", m.Offset)
}

// Map shifts the PTS; a PTS which would become negative is clamped to zero.
func (m Mapper) Map(_ context.Context, in frame.Frame) (frame.Frame, bool) {
	pts := in.PTS() + m.Offset
	if pts < 0 {
		pts = 0
	}
	return frame.New(pts), true
}

type Filter = filter.MapperFilter[Mapper]

func New(offset time.Duration) *Filter {
	return filter.NewMapperFilter(Mapper{Offset: offset})
}

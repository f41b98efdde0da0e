// Package monotonicpts provides a Filter which drops frames going back in time.
package monotonicpts

import (
	"context"
	"fmt"
	"time"

	"github.com/xaionaro-go/framepipe/filter"
	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/logger"
)

type Mapper struct {
	LatestPTS time.Duration
	Started   bool
	Dropped   uint64
}

func (m *Mapper) String() string {
	return fmt.Sprintf("MonotonicPTS(%v)", m.LatestPTS)
}

func (m *Mapper) Map(ctx context.Context, in frame.Frame) (frame.Frame, bool) {
	pts := in.PTS()
	if m.Started && pts < m.LatestPTS {
		logger.Debugf(ctx, "MonotonicPTS: PTS went backwards: %v < %v; dropping the frame", pts, m.LatestPTS)
		m.Dropped++
		return in, false
	}
	m.Started = true
	m.LatestPTS = pts
	return in, true
}

type Filter = filter.MapperFilter[*Mapper]

func New() *Filter {
	return filter.NewMapperFilter(&Mapper{})
}

// Package conditional provides a Filter passing through only the frames
// matching a condition.
package conditional

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/framepipe/filter"
	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/frame/condition"
	"github.com/xaionaro-go/framepipe/logger"
)

type Mapper struct {
	Condition condition.Condition
	Dropped   uint64
}

func (m *Mapper) String() string {
	return fmt.Sprintf("Conditional(%s)", m.Condition)
}

func (m *Mapper) Map(ctx context.Context, in frame.Frame) (frame.Frame, bool) {
	if !m.Condition.Match(ctx, in) {
		logger.Tracef(ctx, "%s: %s does not match", m, in)
		m.Dropped++
		return in, false
	}
	return in, true
}

type Filter = filter.MapperFilter[*Mapper]

func New(cond condition.Condition) *Filter {
	return filter.NewMapperFilter(&Mapper{Condition: cond})
}

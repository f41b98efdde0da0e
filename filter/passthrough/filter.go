// Package passthrough provides the identity Filter.
package passthrough

import (
	"context"

	"github.com/xaionaro-go/framepipe/filter"
	"github.com/xaionaro-go/framepipe/frame"
)

type Mapper struct{}

func (Mapper) String() string {
	return "Passthrough"
}

func (Mapper) Map(_ context.Context, in frame.Frame) (frame.Frame, bool) {
	return in, true
}

type Filter = filter.MapperFilter[Mapper]

func New() *Filter {
	return filter.NewMapperFilter(Mapper{})
}

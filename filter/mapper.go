// mapper.go implements a one-slot Filter built from a per-frame function.

// Package filter contains the building blocks of frame transformers.
package filter

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/logger"
	"github.com/xaionaro-go/framepipe/node"
	"github.com/xaionaro-go/framepipe/types"
	"github.com/xaionaro-go/typing"
)

// Mapper transforms a single frame; keep == false drops the frame.
type Mapper interface {
	fmt.Stringer
	Map(ctx context.Context, in frame.Frame) (out frame.Frame, keep bool)
}

// MapperFilter is a Filter holding at most one input at a time and emitting
// it through the Mapper.
//
// With nothing pushed in, PollComplete returns Pending; the poller is
// expected to have registered interest upstream (ForwardFilter does).
type MapperFilter[M Mapper] struct {
	Mapper M

	buffered typing.Optional[frame.Optional]
	ended    bool
}

var _ node.Filter = (*MapperFilter[Mapper])(nil)

func NewMapperFilter[M Mapper](mapper M) *MapperFilter[M] {
	return &MapperFilter[M]{
		Mapper: mapper,
	}
}

func (f *MapperFilter[M]) String() string {
	return f.Mapper.String()
}

func (f *MapperFilter[M]) StartSend(
	ctx context.Context,
	in frame.Optional,
) (types.SendResult[frame.Optional], error) {
	if f.ended {
		logger.Warnf(ctx, "%s: received %s after the end of the stream; ignoring", f, frame.OptionalString(in))
		return types.Accepted[frame.Optional](), nil
	}
	if f.buffered.IsSet() {
		return types.Rejected(in), nil
	}
	f.buffered = typing.Opt(in)
	return types.Accepted[frame.Optional](), nil
}

func (f *MapperFilter[M]) PollComplete(
	ctx context.Context,
) (types.Poll[frame.Optional], error) {
	if f.ended {
		return types.Ready(frame.EndOfStream()), nil
	}
	if !f.buffered.IsSet() {
		return types.Pending[frame.Optional](), nil
	}
	in := f.buffered.Get()
	f.buffered = typing.Optional[frame.Optional]{}

	if !in.IsSet() {
		f.ended = true
		return types.Ready(frame.EndOfStream()), nil
	}

	out, keep := f.Mapper.Map(ctx, in.Get())
	if !keep {
		logger.Tracef(ctx, "%s: dropped %s", f, in.Get())
		// the slot is free now, so the poller should come back for more input
		types.WakerFromCtx(ctx).Wake()
		return types.Pending[frame.Optional](), nil
	}
	return types.Ready(frame.Some(out)), nil
}

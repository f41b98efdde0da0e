// filter.go implements re-chunking of a stream into fixed duration slots.

// Package fixedduration provides a Filter which re-buckets frames into
// slots of a fixed duration.
package fixedduration

import (
	"context"
	"fmt"
	"time"

	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/logger"
	"github.com/xaionaro-go/framepipe/node"
	"github.com/xaionaro-go/framepipe/types"
	"github.com/xaionaro-go/typing"
)

type ErrInvalidDuration struct {
	Duration time.Duration
}

func (e ErrInvalidDuration) Error() string {
	return fmt.Sprintf("the slot duration must be positive, but it is %v", e.Duration)
}

// Filter emits exactly one frame per slot of Duration, stamped with the
// start of the slot:
//   - a frame inside the current slot is emitted for it;
//   - a frame beyond the current slot makes the Filter emit a filler frame
//     for the current slot, the frame itself waits for its own slot;
//   - a frame before the current slot is dropped.
type Filter struct {
	Duration time.Duration
	NextPTS  time.Duration

	Dropped uint64
	Filled  uint64

	buffered typing.Optional[frame.Optional]
	ended    bool
}

var _ node.Filter = (*Filter)(nil)

func New(duration time.Duration) (*Filter, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration{Duration: duration}
	}
	return &Filter{
		Duration: duration,
	}, nil
}

func (f *Filter) String() string {
	return fmt.Sprintf("FixedDuration(%v, next:%v)", f.Duration, f.NextPTS)
}

func (f *Filter) StartSend(
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

func (f *Filter) PollComplete(
	ctx context.Context,
) (_ret types.Poll[frame.Optional], _err error) {
	logger.Tracef(ctx, "PollComplete[%s]", f)
	defer func() { logger.Tracef(ctx, "/PollComplete[%s]: %v %v", f, _ret, _err) }()

	if f.ended {
		return types.Ready(frame.EndOfStream()), nil
	}
	if !f.buffered.IsSet() {
		return types.Pending[frame.Optional](), nil
	}
	item := f.buffered.Get()
	f.buffered = typing.Optional[frame.Optional]{}

	if !item.IsSet() {
		f.ended = true
		return types.Ready(frame.EndOfStream()), nil
	}

	in := item.Get()
	if in.PTS() < f.NextPTS {
		logger.Debugf(ctx, "%s: %s belongs to an already emitted slot; dropping", f, in)
		f.Dropped++
		types.WakerFromCtx(ctx).Wake()
		return types.Pending[frame.Optional](), nil
	}

	out := frame.New(f.NextPTS)
	if in.PTS() >= f.NextPTS+f.Duration {
		logger.Debugf(ctx, "%s: gap before %s; emitting a filler", f, in)
		f.Filled++
		f.buffered = typing.Opt(item)
	}
	f.NextPTS += f.Duration
	return types.Ready(frame.Some(out)), nil
}

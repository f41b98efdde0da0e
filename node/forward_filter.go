// forward_filter.go implements a Source made of a Source and a Filter.

package node

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/logger"
	nodetypes "github.com/xaionaro-go/framepipe/node/types"
	"github.com/xaionaro-go/framepipe/types"
	"github.com/xaionaro-go/typing"
)

// ForwardFilter pulls frames from a Source, pushes them into a Filter, and
// yields whatever the Filter is ready to emit. It is itself a Source, so
// filters can be stacked.
//
// At most one item is buffered: the one the Filter rejected, which is
// retried as is on the next poll before anything else is pulled.
type ForwardFilter[S Source, F Filter] struct {
	source S
	filter F

	buffered    typing.Optional[frame.Optional]
	sourceEnded bool
	ended       bool

	Counters *nodetypes.Counters
}

var _ Source = (*ForwardFilter[Source, Filter])(nil)

func NewForwardFilter[S Source, F Filter](source S, filter F) *ForwardFilter[S, F] {
	return &ForwardFilter[S, F]{
		source:   source,
		filter:   filter,
		Counters: nodetypes.NewCounters(),
	}
}

// Source returns the inner source.
func (f *ForwardFilter[S, F]) Source() S {
	return f.source
}

// Filter returns the inner filter.
func (f *ForwardFilter[S, F]) Filter() F {
	return f.filter
}

func (f *ForwardFilter[S, F]) String() string {
	return fmt.Sprintf("ForwardFilter(%s -> %s)", f.source, f.filter)
}

func (f *ForwardFilter[S, F]) GetStats() types.ForwardingStatistics {
	return f.Counters.ToStats()
}

func (f *ForwardFilter[S, F]) Poll(
	ctx context.Context,
) (_ret types.Poll[frame.Optional], _err error) {
	logger.Tracef(ctx, "Poll[%s]", f)
	defer func() { logger.Tracef(ctx, "/Poll[%s]: %v %v", f, _ret, _err) }()

	if f.ended {
		return types.Ready(frame.EndOfStream()), nil
	}

	switch {
	case f.buffered.IsSet():
		item := f.buffered.Get()
		f.buffered = typing.Optional[frame.Optional]{}
		if err := f.trySend(ctx, item); err != nil {
			return types.Poll[frame.Optional]{}, err
		}
	case !f.sourceEnded:
		in, err := f.source.Poll(ctx)
		if err != nil {
			logger.Debugf(ctx, "unable to poll %s: %v", f.source, err)
			return types.Poll[frame.Optional]{}, err
		}
		if in.IsReady {
			if in.Value.IsSet() {
				f.Counters.Received.Inc()
			} else {
				logger.Debugf(ctx, "source %s reached the end of the stream", f.source)
				f.sourceEnded = true
				f.Counters.EndOfStream.Store(true)
			}
			if err := f.trySend(ctx, in.Value); err != nil {
				return types.Poll[frame.Optional]{}, err
			}
		}
	}

	// The filter may have output ready regardless of what happened above.
	out, err := f.filter.PollComplete(ctx)
	if err != nil {
		logger.Debugf(ctx, "unable to poll the output of %s: %v", f.filter, err)
		return types.Poll[frame.Optional]{}, err
	}
	switch {
	case out.IsPending():
		f.Counters.Pending.Inc()
	case !out.Value.IsSet():
		logger.Debugf(ctx, "filter %s finished emitting", f.filter)
		f.ended = true
	}
	return out, nil
}

func (f *ForwardFilter[S, F]) trySend(
	ctx context.Context,
	item frame.Optional,
) error {
	assert(ctx, !f.buffered.IsSet(), "the buffer slot is already occupied")
	res, err := f.filter.StartSend(ctx, item)
	if err != nil {
		logger.Debugf(ctx, "unable to send %s to %s: %v", frame.OptionalString(item), f.filter, err)
		return err
	}
	if rejected, ok := res.RejectedItem(); ok {
		logger.Tracef(ctx, "filter %s rejected %s", f.filter, frame.OptionalString(rejected))
		f.buffered = typing.Opt(rejected)
		f.Counters.Rejected.Inc()
		return nil
	}
	if item.IsSet() {
		f.Counters.Sent.Inc()
	}
	return nil
}

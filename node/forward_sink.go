// forward_sink.go implements the one-shot operation draining a Source into a Sink.

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

// ForwardSinkResult is the completion value of ForwardSink: the source and
// the sink it was constructed with.
type ForwardSinkResult[S Source, K Sink] struct {
	Source S
	Sink   K
}

type forwardSinkRunning[S Source, K Sink] struct {
	Source   S
	Sink     K
	Buffered typing.Optional[frame.Frame]
	Closing  bool
}

// ForwardSink drains a Source into a Sink until the end of the stream,
// closes the Sink and hands both back as the result.
//
// It is a one-shot Future: after it returned Ready it holds nothing, and
// polling it again returns ErrPolledAfterCompletion.
//
// Abandoning a ForwardSink before completion does not close the Sink.
type ForwardSink[S Source, K Sink] struct {
	// running is nil once completed.
	running *forwardSinkRunning[S, K]

	Counters *nodetypes.Counters
}

var _ types.Future[ForwardSinkResult[Source, Sink]] = (*ForwardSink[Source, Sink])(nil)

func NewForwardSink[S Source, K Sink](source S, sink K) *ForwardSink[S, K] {
	return &ForwardSink[S, K]{
		running: &forwardSinkRunning[S, K]{
			Source: source,
			Sink:   sink,
		},
		Counters: nodetypes.NewCounters(),
	}
}

// Source returns the source, if the ForwardSink is not completed yet.
func (f *ForwardSink[S, K]) Source() (S, bool) {
	if f.running == nil {
		var zero S
		return zero, false
	}
	return f.running.Source, true
}

// Sink returns the sink, if the ForwardSink is not completed yet.
func (f *ForwardSink[S, K]) Sink() (K, bool) {
	if f.running == nil {
		var zero K
		return zero, false
	}
	return f.running.Sink, true
}

func (f *ForwardSink[S, K]) IsCompleted() bool {
	return f.running == nil
}

func (f *ForwardSink[S, K]) GetStats() types.ForwardingStatistics {
	return f.Counters.ToStats()
}

func (f *ForwardSink[S, K]) String() string {
	if f.running == nil {
		return "ForwardSink(completed)"
	}
	return fmt.Sprintf("ForwardSink(%s -> %s)", f.running.Source, f.running.Sink)
}

func (f *ForwardSink[S, K]) Poll(
	ctx context.Context,
) (_ret types.Poll[ForwardSinkResult[S, K]], _err error) {
	logger.Tracef(ctx, "Poll[%s]", f)
	defer func() { logger.Tracef(ctx, "/Poll: ready:%t %v", _ret.IsReady, _err) }()

	r := f.running
	if r == nil {
		return types.Poll[ForwardSinkResult[S, K]]{}, ErrPolledAfterCompletion{Combinator: "ForwardSink"}
	}

	if r.Buffered.IsSet() {
		item := r.Buffered.Get()
		r.Buffered = typing.Optional[frame.Frame]{}
		accepted, err := f.trySend(ctx, item)
		if err != nil {
			return types.Poll[ForwardSinkResult[S, K]]{}, err
		}
		if !accepted {
			return f.pending(), nil
		}
	}

	for !r.Closing {
		in, err := r.Source.Poll(ctx)
		if err != nil {
			logger.Debugf(ctx, "unable to poll %s: %v", r.Source, err)
			return types.Poll[ForwardSinkResult[S, K]]{}, err
		}

		if in.IsPending() {
			// Give the sink a chance to make room; both sides have registered
			// their wake-ups, so the readiness of the flush does not matter.
			if _, err := r.Sink.PollComplete(ctx); err != nil {
				logger.Debugf(ctx, "unable to flush %s: %v", r.Sink, err)
				return types.Poll[ForwardSinkResult[S, K]]{}, err
			}
			return f.pending(), nil
		}

		if !in.Value.IsSet() {
			logger.Debugf(ctx, "source %s reached the end of the stream, closing %s", r.Source, r.Sink)
			f.Counters.EndOfStream.Store(true)
			r.Closing = true
			break
		}

		f.Counters.Received.Inc()
		accepted, err := f.trySend(ctx, in.Value.Get())
		if err != nil {
			return types.Poll[ForwardSinkResult[S, K]]{}, err
		}
		if !accepted {
			return f.pending(), nil
		}
	}

	f.Counters.CloseAttempts.Inc()
	closed, err := r.Sink.PollClose(ctx)
	if err != nil {
		logger.Debugf(ctx, "unable to close %s: %v", r.Sink, err)
		return types.Poll[ForwardSinkResult[S, K]]{}, err
	}
	if closed.IsPending() {
		return f.pending(), nil
	}

	logger.Debugf(ctx, "forwarding %s -> %s completed: %#+v", r.Source, r.Sink, f.Counters.ToStats())
	f.running = nil
	return types.Ready(ForwardSinkResult[S, K]{
		Source: r.Source,
		Sink:   r.Sink,
	}), nil
}

func (f *ForwardSink[S, K]) pending() types.Poll[ForwardSinkResult[S, K]] {
	f.Counters.Pending.Inc()
	return types.Pending[ForwardSinkResult[S, K]]()
}

func (f *ForwardSink[S, K]) trySend(
	ctx context.Context,
	item frame.Frame,
) (bool, error) {
	r := f.running
	assert(ctx, !r.Buffered.IsSet(), "the buffer slot is already occupied")
	res, err := r.Sink.StartSend(ctx, item)
	if err != nil {
		logger.Debugf(ctx, "unable to send %s to %s: %v", item, r.Sink, err)
		return false, err
	}
	if rejected, ok := res.RejectedItem(); ok {
		logger.Tracef(ctx, "sink %s rejected %s", r.Sink, rejected)
		r.Buffered = typing.Opt(rejected)
		f.Counters.Rejected.Inc()
		return false, nil
	}
	f.Counters.Sent.Inc()
	return true, nil
}

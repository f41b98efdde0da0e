// forward.go implements Forward, the one-call way to run a pipeline.

// Package framepipe wires frame sources, filters and sinks into pipelines
// driven by a cooperative poll protocol.
package framepipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/xaionaro-go/framepipe/driver"
	"github.com/xaionaro-go/framepipe/logger"
	"github.com/xaionaro-go/framepipe/node"
	"github.com/xaionaro-go/framepipe/types"
	"github.com/xaionaro-go/xcontext"
)

const (
	DefaultCloseTimeout = 5 * time.Second
)

type ForwardConfig struct {
	// CloseSinkOnCancel makes Forward close the sink if ctx is done before
	// the forwarding completed.
	CloseSinkOnCancel bool

	// CloseTimeout bounds the close of CloseSinkOnCancel; zero means
	// DefaultCloseTimeout.
	CloseTimeout time.Duration
}

// Forward pulls frames from src through the filters (in the given order)
// into sink until the end of the stream, closes the sink and returns the
// stages back together with the forwarding statistics.
//
// The returned source is the chain of src and the filters.
func Forward(
	ctx context.Context,
	src node.Source,
	sink node.Sink,
	cfg ForwardConfig,
	filters ...node.Filter,
) (_src node.Source, _sink node.Sink, _stats types.ForwardingStatistics, _err error) {
	ctx = belt.WithField(ctx, "pipeline", fmt.Sprintf("%s -> %s", src, sink))
	logger.Debugf(ctx, "Forward")
	defer func() { logger.Debugf(ctx, "/Forward: %#+v %v", _stats, _err) }()

	chained := node.Chain(src, filters...)
	fwd := node.NewForwardSink(chained, sink)
	res, err := driver.Run[node.ForwardSinkResult[node.Source, node.Sink]](ctx, fwd)
	stats := fwd.GetStats()
	if err == nil {
		return res.Source, res.Sink, stats, nil
	}

	if ctx.Err() == nil || !cfg.CloseSinkOnCancel || !errors.Is(err, ctx.Err()) {
		return chained, sink, stats, err
	}

	closeErr := closeSink(ctx, sink, cfg.closeTimeout())
	stats = fwd.GetStats()
	if closeErr != nil {
		return chained, sink, stats, errors.Join(err, closeErr)
	}
	return chained, sink, stats, err
}

func (cfg ForwardConfig) closeTimeout() time.Duration {
	if cfg.CloseTimeout <= 0 {
		return DefaultCloseTimeout
	}
	return cfg.CloseTimeout
}

func closeSink(
	ctx context.Context,
	sink node.Sink,
	timeout time.Duration,
) (_err error) {
	logger.Debugf(ctx, "closeSink: %s", sink)
	defer func() { logger.Debugf(ctx, "/closeSink: %s: %v", sink, _err) }()

	ctx, cancelFn := context.WithTimeout(xcontext.DetachDone(ctx), timeout)
	defer cancelFn()
	_, err := driver.Run[types.Unit](ctx, driver.FutureFunc[types.Unit](sink.PollClose))
	if err != nil {
		return fmt.Errorf("unable to close %s: %w", sink, err)
	}
	return nil
}

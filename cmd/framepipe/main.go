package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/framepipe"
	"github.com/xaionaro-go/framepipe/filter/conditional"
	"github.com/xaionaro-go/framepipe/filter/fixedduration"
	"github.com/xaionaro-go/framepipe/filter/monotonicpts"
	"github.com/xaionaro-go/framepipe/filter/shifttimestamps"
	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/frame/condition"
	"github.com/xaionaro-go/framepipe/logger"
	"github.com/xaionaro-go/framepipe/mpsc"
	"github.com/xaionaro-go/framepipe/node"
	"github.com/xaionaro-go/framepipe/types"
	"github.com/xaionaro-go/observability"
)

func main() {
	flags := newFlagSet()
	cfg, err := loadConfig(flags, os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		flags.Usage()
		os.Exit(2)
	}

	loggerLevel, _ := cfg.Level()
	ctx := logger.CtxWithLogrus(context.Background(), loggerLevel)
	ctx, cancelFn := signal.NotifyContext(ctx, os.Interrupt)
	defer cancelFn()
	defer belt.Flush(ctx)

	if cfg.DumpConfig {
		fmt.Fprint(os.Stderr, spew.Sdump(cfg))
	}

	stats, err := run(ctx, cfg, os.Stdout)
	if err != nil {
		logger.Fatalf(ctx, "%v", err)
	}

	statsJSON, err := json.Marshal(stats)
	if err != nil {
		logger.Fatalf(ctx, "unable to serialize the statistics: %v", err)
	}
	fmt.Fprintf(os.Stderr, "%s\n", statsJSON)
	fmt.Fprintf(os.Stderr,
		"received %s frames, sent %s frames, %s rejections, %s pending polls\n",
		humanize.Comma(int64(stats.Received)),
		humanize.Comma(int64(stats.Sent)),
		humanize.Comma(int64(stats.Rejected)),
		humanize.Comma(int64(stats.Pending)),
	)
}

func filtersFromConfig(cfg *Config) ([]node.Filter, error) {
	var filters []node.Filter
	if cfg.Monotonic {
		filters = append(filters, monotonicpts.New())
	}
	if cfg.MinPTS > 0 {
		filters = append(filters, conditional.New(condition.PTSAtLeast(cfg.MinPTS)))
	}
	if cfg.Shift != 0 {
		filters = append(filters, shifttimestamps.New(cfg.Shift))
	}
	if cfg.Chunk != 0 {
		f, err := fixedduration.New(cfg.Chunk)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func run(
	ctx context.Context,
	cfg *Config,
	out io.Writer,
) (_ret types.ForwardingStatistics, _err error) {
	logger.Debugf(ctx, "run")
	defer func() { logger.Debugf(ctx, "/run: %v", _err) }()

	filters, err := filtersFromConfig(cfg)
	if err != nil {
		return types.ForwardingStatistics{}, err
	}

	sender, receiver := mpsc.NewChannel(cfg.Capacity)
	producerErrCh := make(chan error, 1)
	observability.Go(ctx, func(ctx context.Context) {
		defer close(producerErrCh)
		for _, pts := range cfg.Frames() {
			if err := sender.Send(ctx, frame.New(pts)); err != nil {
				producerErrCh <- fmt.Errorf("unable to send a frame: %w", err)
				return
			}
		}
		if err := sender.CloseAndWait(ctx); err != nil {
			producerErrCh <- fmt.Errorf("unable to close the sender: %w", err)
		}
	})

	sink := &printSink{Output: out}
	_, _, stats, err := framepipe.Forward(ctx, receiver, sink, framepipe.ForwardConfig{
		CloseSinkOnCancel: true,
	}, filters...)
	if err != nil {
		if closeErr := receiver.Close(ctx); closeErr != nil {
			logger.Errorf(ctx, "unable to close the receiver: %v", closeErr)
		}
		return stats, fmt.Errorf("unable to forward the frames: %w", err)
	}
	if err := <-producerErrCh; err != nil {
		return stats, err
	}
	return stats, nil
}

package framepipe

import (
	"context"
	"testing"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/framepipe/filter/fixedduration"
	"github.com/xaionaro-go/framepipe/filter/passthrough"
	"github.com/xaionaro-go/framepipe/filter/shifttimestamps"
	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/logger"
	"github.com/xaionaro-go/framepipe/mpsc"
	"github.com/xaionaro-go/framepipe/node/boilerplate"
	"github.com/xaionaro-go/framepipe/types"
	"github.com/xaionaro-go/observability"
)

func seconds(in ...int) []time.Duration {
	result := make([]time.Duration, 0, len(in))
	for _, s := range in {
		result = append(result, time.Duration(s)*time.Second)
	}
	return result
}

func TestForwardFixedDuration(t *testing.T) {
	ctx := logger.CtxWithLogrus(context.Background(), logger.LevelDebug)
	defer belt.Flush(ctx)
	ctx, cancelFn := context.WithTimeout(ctx, 10*time.Second)
	defer cancelFn()

	var frames []frame.Frame
	for _, pts := range seconds(0, 10, 15, 30) {
		frames = append(frames, frame.New(pts))
	}
	src := boilerplate.NewSliceSource(frames...)

	var (
		pts       []time.Duration
		closedAll bool
	)
	sink := boilerplate.NewCollectSink()
	sink.OnFrameFunc = func(ctx context.Context, f frame.Frame) {
		pts = append(pts, f.PTS())
		closedAll = sink.CloseCalls > 0
	}

	filter, err := fixedduration.New(10 * time.Second)
	require.NoError(t, err)

	_, gotSink, stats, err := Forward(ctx, src, sink, ForwardConfig{}, filter)
	require.NoError(t, err)
	require.Equal(t, seconds(0, 10, 20, 30), pts)
	require.False(t, closedAll)
	require.Equal(t, 1, sink.CloseCalls)
	require.Same(t, sink, gotSink)
	require.Equal(t, uint64(4), stats.Received)
	require.Equal(t, uint64(4), stats.Sent)
	require.Equal(t, uint64(1), stats.CloseAttempts)
	require.True(t, stats.EndOfStream)
}

func TestForwardThroughChannel(t *testing.T) {
	ctx, cancelFn := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelFn()

	sender, receiver := mpsc.NewChannel(1)
	errCh := make(chan error, 1)
	observability.Go(ctx, func(ctx context.Context) {
		defer close(errCh)
		for _, pts := range seconds(0, 1, 2, 3, 4) {
			if err := sender.Send(ctx, frame.New(pts)); err != nil {
				errCh <- err
				return
			}
		}
		if err := sender.CloseAndWait(ctx); err != nil {
			errCh <- err
		}
	})

	sink := boilerplate.NewCollectSink()
	_, _, stats, err := Forward(
		ctx, receiver, sink, ForwardConfig{},
		passthrough.New(),
		shifttimestamps.New(time.Second),
	)
	require.NoError(t, err)
	require.NoError(t, <-errCh)

	var pts []time.Duration
	for _, f := range sink.Frames {
		pts = append(pts, f.PTS())
	}
	require.Equal(t, seconds(1, 2, 3, 4, 5), pts)
	require.Equal(t, uint64(5), stats.Sent)
}

func TestForwardCloseSinkOnCancel(t *testing.T) {
	for _, closeOnCancel := range []bool{false, true} {
		t.Run(map[bool]string{false: "keep", true: "close"}[closeOnCancel], func(t *testing.T) {
			ctx, cancelFn := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancelFn()

			// a source which never ends
			src := &boilerplate.FuncsToSource{
				PollFunc: func(ctx context.Context) (types.Poll[frame.Optional], error) {
					return types.Pending[frame.Optional](), nil
				},
			}
			sink := boilerplate.NewCollectSink()

			_, _, _, err := Forward(ctx, src, sink, ForwardConfig{
				CloseSinkOnCancel: closeOnCancel,
				CloseTimeout:      time.Second,
			})
			require.ErrorIs(t, err, context.DeadlineExceeded)
			if closeOnCancel {
				require.Equal(t, 1, sink.CloseCalls)
			} else {
				require.Zero(t, sink.CloseCalls)
			}
		})
	}
}

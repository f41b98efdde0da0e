package fixedduration

import (
	"context"
	"testing"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/logger"
	"github.com/xaionaro-go/framepipe/node"
	"github.com/xaionaro-go/framepipe/node/boilerplate"
	"github.com/xaionaro-go/framepipe/types"
)

func framesAt(seconds ...int) []frame.Frame {
	result := make([]frame.Frame, 0, len(seconds))
	for _, s := range seconds {
		result = append(result, frame.New(time.Duration(s)*time.Second))
	}
	return result
}

func drain(t *testing.T, ctx context.Context, src node.Source) []time.Duration {
	var result []time.Duration
	for range 1000 {
		p, err := src.Poll(ctx)
		require.NoError(t, err)
		if p.IsPending() {
			continue
		}
		if frame.IsEndOfStream(p.Value) {
			return result
		}
		result = append(result, p.Value.Get().PTS())
	}
	t.Fatalf("the stream did not end")
	return nil
}

func TestFixedDurationRechunk(t *testing.T) {
	ctx := logger.CtxWithLogrus(context.Background(), logger.LevelTrace)
	defer belt.Flush(ctx)

	f, err := New(10 * time.Second)
	require.NoError(t, err)

	src := node.NewForwardFilter(boilerplate.NewSliceSource(framesAt(0, 10, 15, 30)...), f)
	require.Equal(t, []time.Duration{
		0,
		10 * time.Second,
		20 * time.Second,
		30 * time.Second,
	}, drain(t, ctx, src))

	assert.Equal(t, uint64(1), f.Dropped)
	assert.Equal(t, uint64(1), f.Filled)
	assert.Equal(t, 40*time.Second, f.NextPTS)

	// the end of the stream is latched
	p, err := src.Poll(ctx)
	require.NoError(t, err)
	require.True(t, p.IsReady)
	require.True(t, frame.IsEndOfStream(p.Value))
}

func TestFixedDurationLongGap(t *testing.T) {
	ctx := context.Background()

	f, err := New(10 * time.Second)
	require.NoError(t, err)

	src := node.NewForwardFilter(boilerplate.NewSliceSource(framesAt(0, 35)...), f)
	require.Equal(t, []time.Duration{
		0,
		10 * time.Second,
		20 * time.Second,
		30 * time.Second,
	}, drain(t, ctx, src))
	assert.Equal(t, uint64(2), f.Filled)
	assert.Zero(t, f.Dropped)
}

func TestFixedDurationOneSlot(t *testing.T) {
	ctx := context.Background()

	f, err := New(time.Second)
	require.NoError(t, err)

	p, err := f.PollComplete(ctx)
	require.NoError(t, err)
	require.True(t, p.IsPending())

	first := frame.Some(frame.New(3 * time.Second))
	second := frame.Some(frame.New(4 * time.Second))

	res, err := f.StartSend(ctx, first)
	require.NoError(t, err)
	require.True(t, res.IsAccepted())

	res, err = f.StartSend(ctx, second)
	require.NoError(t, err)
	rejected, ok := res.RejectedItem()
	require.True(t, ok)
	require.Equal(t, second, rejected)

	// 3s is three slots ahead: fillers for 0s, 1s and 2s come first
	for _, expected := range []time.Duration{0, time.Second, 2 * time.Second, 3 * time.Second} {
		p, err := f.PollComplete(ctx)
		require.NoError(t, err)
		require.True(t, p.IsReady)
		require.Equal(t, expected, p.Value.Get().PTS())
	}

	p, err = f.PollComplete(ctx)
	require.NoError(t, err)
	require.True(t, p.IsPending())
}

func TestFixedDurationDropWakes(t *testing.T) {
	wakes := 0
	ctx := types.CtxWithWaker(context.Background(), types.WakerFunc(func() { wakes++ }))

	f, err := New(time.Second)
	require.NoError(t, err)
	f.NextPTS = 5 * time.Second

	_, err = f.StartSend(ctx, frame.Some(frame.New(time.Second)))
	require.NoError(t, err)

	p, err := f.PollComplete(ctx)
	require.NoError(t, err)
	require.True(t, p.IsPending())
	require.Equal(t, 1, wakes)
	require.Equal(t, uint64(1), f.Dropped)
}

func TestFixedDurationInvalid(t *testing.T) {
	_, err := New(0)
	require.ErrorAs(t, err, &ErrInvalidDuration{})

	_, err = New(-time.Second)
	require.Error(t, err)
}

package conditional

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/frame/condition"
	"github.com/xaionaro-go/framepipe/node"
	"github.com/xaionaro-go/framepipe/node/boilerplate"
)

func TestConditional(t *testing.T) {
	ctx := context.Background()

	f := New(condition.PTSAtLeast(2 * time.Second))
	src := node.NewForwardFilter(boilerplate.NewSliceSource(
		frame.New(0),
		frame.New(time.Second),
		frame.New(2*time.Second),
		frame.New(3*time.Second),
	), f)

	var out []time.Duration
	for range 100 {
		p, err := src.Poll(ctx)
		require.NoError(t, err)
		if p.IsPending() {
			continue
		}
		if frame.IsEndOfStream(p.Value) {
			break
		}
		out = append(out, p.Value.Get().PTS())
	}
	require.Equal(t, []time.Duration{2 * time.Second, 3 * time.Second}, out)
	require.Equal(t, uint64(2), f.Mapper.Dropped)
}

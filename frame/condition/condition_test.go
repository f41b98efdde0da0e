package condition

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/framepipe/frame"
)

func TestConditions(t *testing.T) {
	ctx := context.Background()
	window := And{PTSAtLeast(10 * time.Second), PTSBelow(20 * time.Second)}

	for _, tc := range []struct {
		PTS      time.Duration
		InWindow bool
	}{
		{PTS: 0, InWindow: false},
		{PTS: 10 * time.Second, InWindow: true},
		{PTS: 15 * time.Second, InWindow: true},
		{PTS: 20 * time.Second, InWindow: false},
	} {
		f := frame.New(tc.PTS)
		require.Equal(t, tc.InWindow, window.Match(ctx, f), tc.PTS)
		require.Equal(t, !tc.InWindow, Not(window).Match(ctx, f), tc.PTS)
	}

	require.Equal(t, "(PTS>=10s&PTS<20s)", window.String())

	var or Or
	or.Add(Static(false)).Add(Function(func(_ context.Context, f frame.Frame) bool {
		return f.PTS() == time.Second
	}))
	require.True(t, or.Match(ctx, frame.New(time.Second)))
	require.False(t, or.Match(ctx, frame.New(2*time.Second)))

	require.True(t, And{}.Match(ctx, frame.New(0)))
	require.False(t, Or{}.Match(ctx, frame.New(0)))
}

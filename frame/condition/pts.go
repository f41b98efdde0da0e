package condition

import (
	"context"
	"fmt"
	"time"

	"github.com/xaionaro-go/framepipe/frame"
)

// PTSAtLeast matches frames with PTS not lower than the value.
type PTSAtLeast time.Duration

var _ Condition = (PTSAtLeast)(0)

func (v PTSAtLeast) String() string {
	return fmt.Sprintf("PTS>=%v", time.Duration(v))
}

func (v PTSAtLeast) Match(_ context.Context, f frame.Frame) bool {
	return f.PTS() >= time.Duration(v)
}

// PTSBelow matches frames with PTS lower than the value.
type PTSBelow time.Duration

var _ Condition = (PTSBelow)(0)

func (v PTSBelow) String() string {
	return fmt.Sprintf("PTS<%v", time.Duration(v))
}

func (v PTSBelow) Match(_ context.Context, f frame.Frame) bool {
	return f.PTS() < time.Duration(v)
}

// condition.go defines the Condition interface for filtering frames.

// Package condition provides various conditions for filtering frames.
package condition

import (
	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/types"
)

type Condition = types.Condition[frame.Frame]

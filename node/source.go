// source.go defines the pull-style producer of frames.

// Package node contains the polling contracts of pipeline stages and the
// combinators which wire them together.
package node

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/types"
)

// Source is a pull-style producer of frames.
//
// Poll returns:
//   - Ready(frame): one frame, ownership moves to the caller;
//   - Ready(end-of-stream): no more frames will ever be produced; every
//     Source must keep returning it on further polls;
//   - Pending: nothing available now; the waker from ctx will be woken
//     when it is worth polling again.
//
// Combinators return the errors of their inner stages as is, without
// wrapping.
type Source interface {
	fmt.Stringer
	Poll(ctx context.Context) (types.Poll[frame.Optional], error)
}

/* for easier copy&paste:

func () Poll(
	ctx context.Context,
) (types.Poll[frame.Optional], error) {

}

*/

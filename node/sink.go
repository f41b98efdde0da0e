// sink.go defines the push-style consumer of frames.

package node

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/types"
)

// Sink is a push-style consumer of frames with explicit flush and close phases.
//
// If StartSend rejects a frame, the caller must call PollComplete and retry
// with the very same frame once the Sink woke it up.
//
// PollClose finalizes the Sink; it may return Pending a few times while
// flushing, each call continues the same logical close. No StartSend is
// expected after PollClose was called.
type Sink interface {
	fmt.Stringer
	StartSend(ctx context.Context, f frame.Frame) (types.SendResult[frame.Frame], error)
	PollComplete(ctx context.Context) (types.Poll[types.Unit], error)
	PollClose(ctx context.Context) (types.Poll[types.Unit], error)
}

/* for easier copy&paste:

func () StartSend(
	ctx context.Context,
	f frame.Frame,
) (types.SendResult[frame.Frame], error) {

}

func () PollComplete(
	ctx context.Context,
) (types.Poll[types.Unit], error) {

}

func () PollClose(
	ctx context.Context,
) (types.Poll[types.Unit], error) {

}

*/

// filter.go defines the push-then-pull transforming stage.

package node

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/framepipe/frame"
	"github.com/xaionaro-go/framepipe/types"
)

// Filter is a transforming stage: frames (and eventually the end-of-stream
// marker) are pushed in with StartSend, and zero or more transformed frames
// followed by the end-of-stream marker are pulled out with PollComplete.
type Filter interface {
	fmt.Stringer
	StartSend(ctx context.Context, f frame.Optional) (types.SendResult[frame.Optional], error)
	PollComplete(ctx context.Context) (types.Poll[frame.Optional], error)
}

/* for easier copy&paste:

func () StartSend(
	ctx context.Context,
	f frame.Optional,
) (types.SendResult[frame.Optional], error) {

}

func () PollComplete(
	ctx context.Context,
) (types.Poll[frame.Optional], error) {

}

*/

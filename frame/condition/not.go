package condition

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/framepipe/frame"
)

// Not matches if the conjunction of its items does not.
type Not []Condition

var _ Condition = (Not)(nil)

func (n Not) String() string {
	return fmt.Sprintf("!%s", And(n))
}

func (n Not) Match(
	ctx context.Context,
	f frame.Frame,
) bool {
	return !And(n).Match(ctx, f)
}

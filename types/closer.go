// closer.go defines the Closer interface.

package types

import (
	"context"
)

// Closer is implemented by resources which are released explicitly
// rather than by a poll-based close, e.g. the receiving end of a channel.
type Closer interface {
	Close(context.Context) error
}

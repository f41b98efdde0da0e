// Package types contains the helper types of package node.
package types

import (
	"github.com/xaionaro-go/framepipe/types"
	"go.uber.org/atomic"
)

// Counters are the live counters of a combinator.
//
// They are atomic so that statistics may be read from another goroutine
// while the combinator is being polled.
type Counters struct {
	Received      atomic.Uint64
	Sent          atomic.Uint64
	Rejected      atomic.Uint64
	Pending       atomic.Uint64
	CloseAttempts atomic.Uint64
	EndOfStream   atomic.Bool
}

func NewCounters() *Counters {
	return &Counters{}
}

func (c *Counters) ToStats() types.ForwardingStatistics {
	return types.ForwardingStatistics{
		Received:      c.Received.Load(),
		Sent:          c.Sent.Load(),
		Rejected:      c.Rejected.Load(),
		Pending:       c.Pending.Load(),
		CloseAttempts: c.CloseAttempts.Load(),
		EndOfStream:   c.EndOfStream.Load(),
	}
}

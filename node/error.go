package node

import "fmt"

// ErrPolledAfterCompletion is returned by a one-shot combinator which is
// polled again after it already completed and handed its stages back.
type ErrPolledAfterCompletion struct {
	Combinator string
}

func (e ErrPolledAfterCompletion) Error() string {
	return fmt.Sprintf("%s is polled after completion", e.Combinator)
}

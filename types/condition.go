package types

import (
	"context"
	"fmt"
)

// Condition is a predicate over the items of type T flowing through
// a pipeline.
type Condition[T any] interface {
	fmt.Stringer
	Match(context.Context, T) bool
}

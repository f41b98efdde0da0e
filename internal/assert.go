// Package internal contains helpers shared across framepipe packages.
package internal

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/framepipe/logger"
)

// Assert panics (through the logger, so the failure is logged with the
// context fields) if a programming-contract invariant is violated.
func Assert(
	ctx context.Context,
	mustBeTrue bool,
	extraArgs ...any,
) {
	if mustBeTrue {
		return
	}

	logger.Panicf(ctx, "assertion failed: %s", fmt.Sprint(extraArgs...))
}

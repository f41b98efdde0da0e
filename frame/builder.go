package frame

import (
	"time"
)

// Builder constructs a Frame field by field.
//
// The zero value is a valid builder producing a frame with zero PTS.
type Builder struct {
	pts time.Duration
}

// NewBuilder returns a builder with default values.
func NewBuilder() *Builder {
	return &Builder{}
}

// PTS sets the presentation timestamp.
func (b *Builder) PTS(pts time.Duration) *Builder {
	b.pts = pts
	return b
}

// Build returns the constructed frame. The builder can be reused.
func (b *Builder) Build() Frame {
	return New(b.pts)
}

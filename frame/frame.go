// frame.go defines the Frame value type.

// Package frame provides the media frame value passed between pipeline stages.
package frame

import (
	"fmt"
	"time"

	"github.com/xaionaro-go/typing"
)

// Frame is an immutable timestamped unit of media data.
//
// Frames are plain values: copying a Frame moves it to the next stage,
// and two frames are equal if all of their fields are equal.
type Frame struct {
	pts time.Duration
}

// Optional is either a Frame or the end-of-stream marker (the unset value).
type Optional = typing.Optional[Frame]

// New returns a frame with the given presentation timestamp.
func New(pts time.Duration) Frame {
	return Frame{pts: pts}
}

// PTS returns the presentation timestamp.
func (f Frame) PTS() time.Duration {
	return f.pts
}

func (f Frame) String() string {
	return fmt.Sprintf("Frame{PTS:%v}", f.pts)
}

func (f Frame) GoString() string {
	return fmt.Sprintf("frame.New(%d /* %v */)", int64(f.pts), f.pts)
}

// Some wraps the frame into an Optional.
func Some(f Frame) Optional {
	return typing.Opt(f)
}

// EndOfStream returns the end-of-stream marker.
func EndOfStream() Optional {
	return Optional{}
}

// IsEndOfStream reports whether the Optional is the end-of-stream marker.
func IsEndOfStream(f Optional) bool {
	return !f.IsSet()
}

// OptionalString formats an Optional for logs.
func OptionalString(f Optional) string {
	if !f.IsSet() {
		return "EOS"
	}
	return f.Get().String()
}

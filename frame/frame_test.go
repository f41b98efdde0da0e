package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	f := NewBuilder().PTS(10 * time.Second).Build()
	require.Equal(t, 10*time.Second, f.PTS())
	require.Equal(t, New(10*time.Second), f)
	require.NotEqual(t, New(11*time.Second), f)

	var b Builder
	require.Equal(t, time.Duration(0), b.Build().PTS())
}

func TestBuilderReuse(t *testing.T) {
	b := NewBuilder()
	f0 := b.PTS(time.Second).Build()
	f1 := b.PTS(2 * time.Second).Build()
	assert.Equal(t, time.Second, f0.PTS())
	assert.Equal(t, 2*time.Second, f1.PTS())
}

func TestOptional(t *testing.T) {
	eos := EndOfStream()
	assert.True(t, IsEndOfStream(eos))
	assert.Equal(t, "EOS", OptionalString(eos))

	some := Some(New(time.Second))
	assert.False(t, IsEndOfStream(some))
	assert.Equal(t, New(time.Second), some.Get())
	assert.Equal(t, "Frame{PTS:1s}", OptionalString(some))
}

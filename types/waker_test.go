package types

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWakerFromCtx(t *testing.T) {
	ctx := context.Background()
	WakerFromCtx(ctx).Wake() // no-op, must not panic

	count := 0
	ctx = CtxWithWaker(ctx, WakerFunc(func() { count++ }))
	WakerFromCtx(ctx).Wake()
	WakerFromCtx(ctx).Wake()
	assert.Equal(t, 2, count)
}

func TestGetObjectID(t *testing.T) {
	a, b := &struct{ int }{}, &struct{ int }{}
	assert.NotEqual(t, GetObjectID(a), GetObjectID(b))
	assert.Equal(t, GetObjectID(a), GetObjectID(a))
	assert.Equal(t, ObjectID(0), GetObjectID(nil))
	assert.Equal(t, ObjectID(0), GetObjectID(1))
}

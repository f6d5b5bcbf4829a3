package sokosolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateContextRejectsZeroCapacity(t *testing.T) {
	_, err := CreateContext(4, 4, 0)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestCreateContextRejectsZeroDimensions(t *testing.T) {
	_, err := CreateContext(0, 4, 10)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = CreateContext(4, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestCreateContextPadsDimensions(t *testing.T) {
	ctx, err := CreateContext(4, 6, 10)
	assert.NoError(t, err)
	assert.Equal(t, 6, ctx.Width())
	assert.Equal(t, 8, ctx.Height())
	assert.Equal(t, 10, ctx.Capacity())
}

func TestContextAllocBitsAdvancesSlot(t *testing.T) {
	ctx, err := CreateContext(4, 4, 10)
	assert.NoError(t, err)
	ctx.ensurePools()
	a, next := ctx.allocBits(0)
	assert.Equal(t, 1, next)
	b, next2 := ctx.allocBits(next)
	assert.Equal(t, 2, next2)
	a.Set(1)
	b.Set(1)
	assert.True(t, a.Get(1))
	assert.True(t, b.Get(1))
}

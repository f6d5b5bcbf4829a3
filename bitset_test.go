package sokosolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitSetSetClearGet(t *testing.T) {
	bs := newBitSet(3)
	assert.False(t, bs.Get(5))
	bs.Set(5)
	assert.True(t, bs.Get(5))
	bs.Clear(5)
	assert.False(t, bs.Get(5))
}

func TestBitSetEqual(t *testing.T) {
	a := newBitSet(2)
	b := newBitSet(2)
	assert.True(t, a.Equal(b))
	a.Set(10)
	assert.False(t, a.Equal(b))
	b.Set(10)
	assert.True(t, a.Equal(b))
}

func TestBitSetCoversAllAndAny(t *testing.T) {
	sub := newBitSet(2)
	cover := newBitSet(2)
	sub.Set(3)
	sub.Set(70)
	cover.Set(3)
	cover.Set(70)
	cover.Set(12)
	assert.True(t, sub.CoversAll(cover))
	assert.True(t, sub.CoversAny(cover))

	other := newBitSet(2)
	other.Set(12)
	assert.False(t, sub.CoversAll(other))
	assert.False(t, sub.CoversAny(other))
}

func TestBitSetXor(t *testing.T) {
	a := newBitSet(1)
	b := newBitSet(1)
	out := newBitSet(1)
	a.Set(4)
	a.Set(9)
	b.Set(9)
	b.Set(20)
	a.Xor(b, out)
	assert.True(t, out.Get(4))
	assert.True(t, out.Get(20))
	assert.False(t, out.Get(9))
}

func TestBitSetCompareAndCopy(t *testing.T) {
	a := newBitSet(2)
	b := newBitSet(2)
	assert.Equal(t, 0, a.Compare(b))
	a.Set(1)
	assert.NotEqual(t, 0, a.Compare(b))
	b.CopyFrom(a)
	assert.Equal(t, 0, a.Compare(b))
	assert.True(t, b.Get(1))
}

func TestBitSetSetAllClearAll(t *testing.T) {
	bs := newBitSet(2)
	bs.setAll()
	for i := Position(0); i < 100; i++ {
		assert.True(t, bs.Get(i))
	}
	bs.clearAll()
	for i := Position(0); i < 100; i++ {
		assert.False(t, bs.Get(i))
	}
}

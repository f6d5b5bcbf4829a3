package sokosolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashSetInsertAndLookup(t *testing.T) {
	set := newHashSet(16)
	crates := newBitSet(1)
	crates.Set(5)
	s := &State{player: 3, crates: crates, heapIndex: notInHeap}
	set.insert(s)

	found := set.lookup(3, crates)
	assert.Same(t, s, found)
}

func TestHashSetLookupMiss(t *testing.T) {
	set := newHashSet(16)
	crates := newBitSet(1)
	assert.Nil(t, set.lookup(1, crates))
}

func TestHashSetDistinguishesCrateLayouts(t *testing.T) {
	set := newHashSet(16)
	cratesA := newBitSet(1)
	cratesA.Set(5)
	cratesB := newBitSet(1)
	cratesB.Set(6)

	a := &State{player: 3, crates: cratesA, heapIndex: notInHeap}
	b := &State{player: 3, crates: cratesB, heapIndex: notInHeap}
	set.insert(a)
	set.insert(b)

	assert.Same(t, a, set.lookup(3, cratesA))
	assert.Same(t, b, set.lookup(3, cratesB))
}

func TestHashSetClear(t *testing.T) {
	set := newHashSet(16)
	crates := newBitSet(1)
	set.insert(&State{player: 1, crates: crates, heapIndex: notInHeap})
	set.clear()
	assert.Nil(t, set.lookup(1, crates))
	assert.Equal(t, 0, set.count)
}

func TestStateKeyDiffersByPlayerAndCrates(t *testing.T) {
	crates := newBitSet(1)
	crates.Set(9)
	k1 := stateKey(1, crates)
	k2 := stateKey(2, crates)
	assert.NotEqual(t, k1, k2)
}

package sokosolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinHeapOrdersByPriority(t *testing.T) {
	h := newMinHeap(8)
	priorities := []float64{5, 1, 4, 2, 8, 0, 7}
	states := make([]*State, len(priorities))
	for i, p := range priorities {
		states[i] = &State{priority: p, heapIndex: notInHeap}
		h.insert(states[i])
	}

	var popped []float64
	for h.size > 0 {
		popped = append(popped, h.pop().priority)
	}
	for i := 1; i < len(popped); i++ {
		assert.LessOrEqual(t, popped[i-1], popped[i])
	}
}

func TestMinHeapTracksHeapIndex(t *testing.T) {
	h := newMinHeap(4)
	a := &State{priority: 10, heapIndex: notInHeap}
	b := &State{priority: 20, heapIndex: notInHeap}
	h.insert(a)
	h.insert(b)
	assert.Equal(t, h.slots[a.heapIndex], a)
	assert.Equal(t, h.slots[b.heapIndex], b)
}

func TestMinHeapDecreaseKey(t *testing.T) {
	h := newMinHeap(4)
	a := &State{priority: 10, heapIndex: notInHeap}
	b := &State{priority: 20, heapIndex: notInHeap}
	c := &State{priority: 30, heapIndex: notInHeap}
	h.insert(a)
	h.insert(b)
	h.insert(c)

	c.priority = 1
	h.decreaseKey(c)
	assert.Same(t, c, h.pop())
}

func TestMinHeapPopSetsNotInHeap(t *testing.T) {
	h := newMinHeap(2)
	a := &State{priority: 1, heapIndex: notInHeap}
	h.insert(a)
	popped := h.pop()
	assert.Equal(t, notInHeap, popped.heapIndex)
	assert.Equal(t, 0, h.size)
}

func TestMinHeapReset(t *testing.T) {
	h := newMinHeap(4)
	h.insert(&State{priority: 1, heapIndex: notInHeap})
	h.insert(&State{priority: 2, heapIndex: notInHeap})
	h.reset()
	assert.Equal(t, 0, h.size)
	for _, slot := range h.slots {
		assert.Nil(t, slot)
	}
}

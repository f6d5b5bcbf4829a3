// heap.go
// Copyright (C) 2024 Yahia Zakaria
// This file implements the intrusive binary min-heap used as the A*
// frontier. Each State carries its own heapIndex so that a priority
// decrease can be applied with an O(log n) sift instead of a linear
// search.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package sokosolve

// notInHeap is the sentinel heapIndex value for a state that is not
// currently a member of the frontier.
const notInHeap = -1

// minHeap is a 1-based binary min-heap of *State: the root lives at
// index 1 and slot 0 is reserved and unused, so that a child's parent
// is always index/2. Comparator: strictly lower priority wins; ties
// are broken implicitly by heap mechanics (insertion order is not
// otherwise tracked).
type minHeap struct {
	slots []*State
	size  int
}

// newMinHeap allocates a heap with room for capacity elements (plus the
// unused slot 0).
func newMinHeap(capacity int) *minHeap {
	return &minHeap{slots: make([]*State, capacity+1)}
}

// reset empties the heap without reallocating its backing array.
func (h *minHeap) reset() {
	for i := 1; i <= h.size; i++ {
		h.slots[i] = nil
	}
	h.size = 0
}

// siftUp moves the element at index toward the root while it has lower
// priority than its parent.
func (h *minHeap) siftUp(index int) {
	elem := h.slots[index]
	for index > 1 {
		parentIndex := index / 2
		parent := h.slots[parentIndex]
		if elem.priority >= parent.priority {
			break
		}
		parent.heapIndex = index
		h.slots[index] = parent
		elem.heapIndex = parentIndex
		h.slots[parentIndex] = elem
		index = parentIndex
	}
}

// siftDown moves the element at index toward the leaves while either
// child has lower priority.
func (h *minHeap) siftDown(index int) {
	elem := h.slots[index]
	for {
		left := index * 2
		if left > h.size {
			break
		}
		minChildIndex := left
		minChild := h.slots[left]
		if right := left + 1; right <= h.size && h.slots[right].priority < minChild.priority {
			minChildIndex = right
			minChild = h.slots[right]
		}
		if minChild.priority >= elem.priority {
			break
		}
		minChild.heapIndex = index
		h.slots[index] = minChild
		elem.heapIndex = minChildIndex
		h.slots[minChildIndex] = elem
		index = minChildIndex
	}
}

// insert appends e at the back of the heap and restores the heap
// property by sifting it up.
func (h *minHeap) insert(e *State) {
	h.size++
	e.heapIndex = h.size
	h.slots[h.size] = e
	h.siftUp(h.size)
}

// pop removes and returns the minimum-priority element, moving the last
// leaf to the root and sifting it down. The popped element's heapIndex
// is set to notInHeap.
func (h *minHeap) pop() *State {
	root := h.slots[1]
	root.heapIndex = notInHeap
	last := h.slots[h.size]
	h.slots[h.size] = nil
	h.size--
	if h.size > 0 {
		last.heapIndex = 1
		h.slots[1] = last
		h.siftDown(1)
	}
	return root
}

// decreaseKey re-establishes the heap property after s's priority has
// been lowered in place. s must currently be a member of the heap.
func (h *minHeap) decreaseKey(s *State) {
	h.siftUp(s.heapIndex)
}

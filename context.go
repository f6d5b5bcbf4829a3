// context.go
// Copyright (C) 2024 Yahia Zakaria
// This file implements the Context: the preallocated arena and scratch
// structures shared by every Problem and search call running against a
// fixed grid size and capacity.

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

import "errors"

// ErrInvalidCapacity is returned by CreateContext when capacity is
// zero. The spec leaves the zero-capacity case as an open question
// observed in the original source; sokosolve resolves it by requiring
// capacity >= 1 outright rather than letting the first insert decide.
var ErrInvalidCapacity = errors.New("sokosolve: capacity must be at least 1")

// ErrInvalidDimensions is returned by CreateContext when the requested
// interior width or height is zero.
var ErrInvalidDimensions = errors.New("sokosolve: width and height must be at least 1")

// Context is the arena that backs every search: a fixed pool of
// states, a fixed pool of crate bit-vectors, a hash set of explored
// states, and a min-heap for the A* frontier. All four are sized from
// the padded grid dimensions and the capacity given to CreateContext,
// and none of them are ever resized.
type Context struct {
	width, height int
	area          int
	bitsetSize    int // words per bit-vector
	stateCount    int // capacity + 1

	stateCache  []State
	bitsetCache []uint64
	set         *hashSet
	heap        *minHeap

	directions [4]Direction
	allocated  bool
}

// CreateContext builds a Context for levels whose interior is
// rawWidth x rawHeight (a one-tile wall border is added on every side),
// able to hold up to capacity live states at once. Pools are not
// allocated until the first search runs against this context.
func CreateContext(rawWidth, rawHeight int, capacity int) (*Context, error) {
	if rawWidth <= 0 || rawHeight <= 0 {
		return nil, ErrInvalidDimensions
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	width := rawWidth + 2
	height := rawHeight + 2
	area := width * height
	ctx := &Context{
		width:      width,
		height:     height,
		area:       area,
		bitsetSize: (area + bitsPerWord - 1) / bitsPerWord,
		stateCount: capacity + 1,
	}
	ctx.directions = [4]Direction{-1, 1, Direction(width), -Direction(width)}
	return ctx, nil
}

// Width and Height return the padded grid dimensions (the caller's
// requested size plus the one-tile wall border on every side).
func (ctx *Context) Width() int  { return ctx.width }
func (ctx *Context) Height() int { return ctx.height }

// Capacity returns the maximum number of live states a search against
// this context may hold at once.
func (ctx *Context) Capacity() int { return ctx.stateCount - 1 }

// ensurePools lazily allocates the state cache, bitset cache, hash set,
// and min-heap on first use, then never touches their backing arrays
// again - only resetting the bump pointers and clearing the hash set
// and heap between searches.
func (ctx *Context) ensurePools() {
	if ctx.allocated {
		return
	}
	ctx.stateCache = make([]State, ctx.stateCount)
	ctx.bitsetCache = make([]uint64, ctx.stateCount*ctx.bitsetSize)
	ctx.set = newHashSet(ctx.stateCount)
	ctx.heap = newMinHeap(ctx.stateCount)
	ctx.allocated = true
}

// allocBits bump-allocates the next crate bit-vector slot from the
// bitset cache, given the current bump index (in bitsetSize-sized
// units). It returns the new slot's BitSet view and the advanced
// index.
func (ctx *Context) allocBits(freeBitsSlot int) (BitSet, int) {
	start := freeBitsSlot * ctx.bitsetSize
	end := start + ctx.bitsetSize
	return BitSet(ctx.bitsetCache[start:end]), freeBitsSlot + 1
}

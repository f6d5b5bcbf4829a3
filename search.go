// search.go
// Copyright (C) 2024 Yahia Zakaria
// This file implements child expansion, the BFS driver, and the A* /
// weighted best-first driver over a Context's preallocated arena.

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

// Result is what a search driver returns. Actions is empty whenever
// Solved is false. Iterations counts the number of states expanded,
// regardless of outcome.
type Result struct {
	Solved        bool
	Actions       string
	Iterations    uint64
	LimitExceeded bool
}

// reconstruct walks parent pointers from the expanding state back to
// the root, writing the move that produced each state, and returns the
// completed action string. finalAction is the move that produced the
// goal child (it is not itself stored as a State, since the search
// returns as soon as the goal configuration is detected).
func reconstruct(expandedFrom *State, finalAction Action, cost Cost) string {
	buf := make([]byte, cost)
	buf[cost-1] = byte(finalAction)
	index := int(cost) - 2
	for s := expandedFrom; s.parent != nil; s = s.parent {
		buf[index] = byte(s.action)
		index--
	}
	return string(buf)
}

// expandChild applies direction to parent, producing the resulting
// player position, the crates vector to use (shared with the parent,
// or a freshly bump-allocated push), whether a push happened, and the
// action character. It reports ok=false if the move is illegal (walks
// into a wall, or pushes into a wall, another crate, a statically
// deadlocked cell, or a cell that closes a 2x2 push-deadlock).
//
// freeBitsSlot is the bump pointer into the context's bitset arena,
// in bitsetSize-sized units; it is advanced only when a push actually
// allocates a vector, and the caller is responsible for rolling the
// allocation back (by not advancing its own copy) if the resulting
// child turns out to be a duplicate.
func expandChild(ctx *Context, problem *Problem, parent *State, directionIndex int, freeBitsSlot int) (
	player Position, crates BitSet, pushed bool, action Action, newFreeBitsSlot int, ok bool,
) {
	direction := ctx.directions[directionIndex]
	player = parent.player + Position(direction)
	if problem.walls.Get(player) {
		return 0, nil, false, 0, freeBitsSlot, false
	}
	if !parent.crates.Get(player) {
		return player, parent.crates, false, lowerActions[directionIndex], freeBitsSlot, true
	}
	next := player + Position(direction)
	if problem.walls.Get(next) || parent.crates.Get(next) || problem.deadlocks.Get(next) {
		return 0, nil, false, 0, freeBitsSlot, false
	}
	if checkSingle2x2Deadlock(ctx, problem, parent.crates, next, direction) {
		return 0, nil, false, 0, freeBitsSlot, false
	}
	pushedCrates, newSlot := ctx.allocBits(freeBitsSlot)
	pushedCrates.CopyFrom(parent.crates)
	pushedCrates.Set(next)
	pushedCrates.Clear(player)
	return player, pushedCrates, true, upperActions[directionIndex], newSlot, true
}

// SolveBFS searches for a solution using uninformed breadth-first
// search, with the context's state arena doubling as the FIFO queue:
// "current" is the read cursor and the bump pointer is the write
// cursor, so states are expanded in exactly the order they were
// discovered. Because every move costs 1, the first push that yields
// the goal configuration is necessarily optimal, so the goal test runs
// at child-generation time rather than at expansion time.
//
// max_iterations == 0 disables the iteration cap; the arena capacity
// cap always applies.
func SolveBFS(ctx *Context, problem *Problem, maxIterations uint64) Result {
	if !problem.potentiallySolvable {
		return Result{}
	}
	ctx.ensurePools()

	freeStateIdx := 0
	freeBitsSlot := 0
	stateCacheEnd := ctx.stateCount

	root := &ctx.stateCache[freeStateIdx]
	freeStateIdx++
	*root = State{player: problem.player, crates: problem.crates, heapIndex: notInHeap}

	ctx.set.clear()
	ctx.set.insert(root)

	var iterations uint64
	currentIdx := 0
	for currentIdx < freeStateIdx {
		if maxIterations > 0 && iterations >= maxIterations {
			return Result{LimitExceeded: true, Iterations: iterations}
		}
		iterations++
		parent := &ctx.stateCache[currentIdx]
		currentIdx++
		cost := parent.cost + 1

		for directionIndex := 0; directionIndex < 4; directionIndex++ {
			player, crates, pushed, action, newBitsSlot, ok := expandChild(ctx, problem, parent, directionIndex, freeBitsSlot)
			if !ok {
				continue
			}
			if pushed && crates.Equal(problem.goals) {
				return Result{
					Solved:     true,
					Actions:    reconstruct(parent, action, cost),
					Iterations: iterations,
				}
			}
			child := &ctx.stateCache[freeStateIdx]
			*child = State{
				parent:    parent,
				action:    action,
				player:    player,
				crates:    crates,
				cost:      cost,
				heapIndex: notInHeap,
			}
			if ctx.set.lookup(player, crates) == nil {
				ctx.set.insert(child)
				freeBitsSlot = newBitsSlot
				freeStateIdx++
				if freeStateIdx == stateCacheEnd {
					return Result{LimitExceeded: true, Iterations: iterations}
				}
			}
			// else: duplicate. The would-be bump allocation (if any)
			// is simply not committed, since freeBitsSlot was not
			// advanced to newBitsSlot - the bitset cache's bump
			// pointer is rolled back implicitly.
		}
	}
	return Result{Iterations: iterations}
}

// computeHeuristic sums, over every crate in the state, the
// precomputed push distance from that crate's cell to the nearest
// reachable goal.
func computeHeuristic(ctx *Context, problem *Problem, crates BitSet) Cost {
	var h Cost
	for position := Position(0); position < Position(ctx.area); position++ {
		if crates.Get(position) {
			h += problem.heuristics[position]
		}
	}
	return h
}

// SolveAStar searches for a solution using weighted best-first search:
// priority = gFactor*cost + hFactor*heuristic. The heap is the
// frontier; the goal test still runs at generation time, which remains
// valid because every step costs 1, making the heuristic consistent
// and the child's cost always exactly parent.cost+1.
//
// Presets: (g=1, h=0) is uniform-cost search; (g=1, h=1) is A*; (g=0,
// h=1) is greedy best-first (not guaranteed optimal).
func SolveAStar(ctx *Context, problem *Problem, hFactor, gFactor float64, maxIterations uint64) Result {
	if !problem.potentiallySolvable {
		return Result{}
	}
	ctx.ensurePools()

	freeStateIdx := 0
	freeBitsSlot := 0
	stateCacheEnd := ctx.stateCount

	root := &ctx.stateCache[freeStateIdx]
	freeStateIdx++
	rootHeuristic := computeHeuristic(ctx, problem, problem.crates)
	*root = State{
		player:    problem.player,
		crates:    problem.crates,
		heuristic: rootHeuristic,
		priority:  hFactor * float64(rootHeuristic),
		heapIndex: notInHeap,
	}

	ctx.set.clear()
	ctx.set.insert(root)
	ctx.heap.reset()
	ctx.heap.insert(root)

	var iterations uint64
	for ctx.heap.size > 0 {
		if maxIterations > 0 && iterations >= maxIterations {
			return Result{LimitExceeded: true, Iterations: iterations}
		}
		iterations++
		parent := ctx.heap.pop()
		cost := parent.cost + 1

		for directionIndex := 0; directionIndex < 4; directionIndex++ {
			player, crates, pushed, action, newBitsSlot, ok := expandChild(ctx, problem, parent, directionIndex, freeBitsSlot)
			if !ok {
				continue
			}
			if pushed && crates.Equal(problem.goals) {
				return Result{
					Solved:     true,
					Actions:    reconstruct(parent, action, cost),
					Iterations: iterations,
				}
			}
			if twin := ctx.set.lookup(player, crates); twin != nil {
				// Duplicate: the tentative bit-vector allocation (if
				// any) is not committed. If the twin is still in the
				// frontier and we reached it more cheaply, lower its
				// key and re-sift.
				if twin.heapIndex != notInHeap && twin.cost > cost {
					twin.parent = parent
					twin.action = action
					twin.cost = cost
					twin.priority = gFactor*float64(cost) + hFactor*float64(twin.heuristic)
					ctx.heap.decreaseKey(twin)
				}
				continue
			}
			heuristic := parent.heuristic
			if pushed {
				heuristic = computeHeuristic(ctx, problem, crates)
			}
			child := &ctx.stateCache[freeStateIdx]
			*child = State{
				parent:    parent,
				action:    action,
				player:    player,
				crates:    crates,
				cost:      cost,
				heuristic: heuristic,
				priority:  gFactor*float64(cost) + hFactor*float64(heuristic),
			}
			ctx.set.insert(child)
			ctx.heap.insert(child)
			freeBitsSlot = newBitsSlot
			freeStateIdx++
			if freeStateIdx == stateCacheEnd {
				return Result{LimitExceeded: true, Iterations: iterations}
			}
		}
	}
	return Result{Iterations: iterations}
}

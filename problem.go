// problem.go
// Copyright (C) 2024 Yahia Zakaria
// This file implements the Problem: the static puzzle, its tile-grammar
// parser, and the pre-search deadlock/heuristic analyses.

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

// Problem holds a single puzzle instance: its static layout plus the
// derived deadlock map and heuristic table. A Problem is allocated
// under a Context and may be re-parsed any number of times; each call
// to Parse resets its derived buffers in place.
type Problem struct {
	ctx *Context

	walls, goals, crates BitSet
	player               Position
	goalCount            Count

	deadlocks  BitSet
	heuristics []Cost

	compilable, potentiallySolvable bool
}

// AllocateProblem allocates the bit-vectors and heuristic table for a
// new Problem under ctx. The problem is not yet valid for searching
// until Parse succeeds.
func (ctx *Context) AllocateProblem() *Problem {
	p := &Problem{
		ctx:        ctx,
		walls:      newBitSet(ctx.bitsetSize),
		goals:      newBitSet(ctx.bitsetSize),
		crates:     newBitSet(ctx.bitsetSize),
		deadlocks:  newBitSet(ctx.bitsetSize),
		heuristics: make([]Cost, ctx.area),
	}
	return p
}

// Compilable reports whether the most recent Parse produced a
// structurally valid level (exactly one player, equal goal and crate
// counts, and at least one misplaced crate).
func (p *Problem) Compilable() bool { return p.compilable }

// PotentiallySolvable reports whether the most recent Parse also
// passed every static pruning check: no 2x2 deadlock on the full
// board, no initial crate resting on a deadlock cell, and every
// mismatched crate/goal reachable from the player.
func (p *Problem) PotentiallySolvable() bool { return p.potentiallySolvable }

// GoalCount returns the number of goals (equivalently, crates) in the
// most recently parsed level.
func (p *Problem) GoalCount() Count { return p.goalCount }

// Player returns the player's initial position on the padded grid.
func (p *Problem) Player() Position { return p.player }

// Walls, Goals, Crates, and Deadlocks return the problem's bit-vectors
// as they stood after the most recent Parse. Crates reflects the
// initial layout, not any state reached while searching.
func (p *Problem) Walls() BitSet     { return p.walls }
func (p *Problem) Goals() BitSet     { return p.goals }
func (p *Problem) Crates() BitSet    { return p.crates }
func (p *Problem) Deadlocks() BitSet { return p.deadlocks }

// Parse reads text according to the tile grammar (§6 of the tile
// alphabet): '.' empty, 'W'/'w' wall, 'A'/'a' player, '1' crate, '0'
// goal, 'g'/'G' crate on goal, '+' player on goal. Any other character
// is skipped without advancing the cell cursor; a NUL byte ends
// parsing early. It returns the Compilable flag, and always leaves
// PotentiallySolvable consistent with it (false whenever Compilable is
// false).
func (p *Problem) Parse(text string) bool {
	ctx := p.ctx
	p.walls.setAll()
	p.goals.clearAll()
	p.crates.clearAll()

	var goalCount, crateCount, playerCount Count
	index := 0

	// nextTile scans forward from index, skipping any character that
	// is not part of the tile alphabet. It returns ok=false once text
	// is exhausted or a NUL byte is seen, either of which ends parsing
	// early (the spec's "a NUL terminates parsing early").
	nextTile := func() (ch byte, ok bool) {
		for index < len(text) {
			c := text[index]
			index++
			if c == 0 {
				return 0, false
			}
			switch c {
			case '.', 'W', 'w', '0', '1', 'A', 'a', 'g', 'G', '+':
				return c, true
			}
		}
		return 0, false
	}

done:
	for y := 1; y < ctx.height-1; y++ {
		position := Position(y*ctx.width + 1)
		for x := 1; x < ctx.width-1; x++ {
			ch, ok := nextTile()
			if !ok {
				break done
			}
			if ch != 'W' && ch != 'w' {
				p.walls.Clear(position)
			}
			switch ch {
			case '0':
				p.goals.Set(position)
				goalCount++
			case '1':
				p.crates.Set(position)
				crateCount++
			case 'A', 'a':
				p.player = position
				playerCount++
			case 'g', 'G':
				p.goals.Set(position)
				goalCount++
				p.crates.Set(position)
				crateCount++
			case '+':
				p.goals.Set(position)
				goalCount++
				p.player = position
				playerCount++
			}
			position++
		}
	}
	p.goalCount = goalCount

	valid := playerCount == 1 && goalCount == crateCount && !p.crates.Equal(p.goals)
	p.compilable = valid

	if valid {
		valid = !checkAll2x2Deadlock(ctx, p)
	}
	if valid {
		generateDeadlockMap(ctx, p)
		valid = !p.crates.CoversAny(p.deadlocks)
	}
	if valid {
		valid = checkReachability(ctx, p.crates, p.goals, p.walls, p.player)
	}
	p.potentiallySolvable = valid
	return p.compilable
}

// generateDeadlockMap runs a reverse-push breadth-first expansion from
// every goal, over all four directions, marking each reached cell as
// not a deadlock and recording the minimal number of pushes from that
// cell to the nearest goal. A cell can be "pulled into" from neighbour
// n only if the cell behind n (relative to the goal side) is not a
// wall - mirroring the constraint that pushing a crate out of n
// requires room for the player to stand beyond it.
func generateDeadlockMap(ctx *Context, p *Problem) {
	area := ctx.area
	p.deadlocks.setAll()
	for i := range p.heuristics {
		p.heuristics[i] = Cost(area)
	}
	queue := make([]Position, 0, area)
	for position := Position(0); position < Position(area); position++ {
		if !p.goals.Get(position) {
			continue
		}
		queue = queue[:0]
		queue = append(queue, position)
		p.deadlocks.Clear(position)
		p.heuristics[position] = 0
		for front := 0; front < len(queue); front++ {
			current := queue[front]
			cost := p.heuristics[current] + 1
			for _, direction := range ctx.directions {
				next := current + Position(direction)
				if p.walls.Get(next) {
					continue
				}
				if !p.deadlocks.Get(next) && p.heuristics[next] <= cost {
					continue
				}
				beyond := next + Position(direction)
				if p.walls.Get(beyond) {
					continue
				}
				queue = append(queue, next)
				p.deadlocks.Clear(next)
				p.heuristics[next] = cost
			}
		}
	}
}

// checkAll2x2Deadlock scans every 2x2 window of the padded grid. If a
// window is entirely wall-or-crate and at least one of its crates is
// not sitting on a goal, the level is statically unsolvable: those
// crates can never be separated again by any sequence of pushes.
func checkAll2x2Deadlock(ctx *Context, p *Problem) bool {
	width := ctx.width
	for y := 0; y < ctx.height-1; y++ {
		for x := 0; x < width-1; x++ {
			base := Position(y*width + x)
			corners := [4]Position{base, base + 1, base + Position(width), base + Position(width) + 1}
			unsafe := false
			allBlocked := true
			for _, c := range corners {
				isWall := p.walls.Get(c)
				isCrate := p.crates.Get(c)
				if !isWall && !isCrate {
					allBlocked = false
					break
				}
				if isCrate && !p.goals.Get(c) {
					unsafe = true
				}
			}
			if allBlocked && unsafe {
				return true
			}
		}
	}
	return false
}

// checkSingle2x2Deadlock tests whether pushing a crate to rest at
// position, having arrived by moving in direction, closes off one of
// the two 2x2 squares made of the crate, the cell beyond it in
// direction, and the two cells beside those on one orthogonal side,
// with at least one misplaced crate inside. "Closed" means every one of the other three
// cells in the square is a wall or a crate.
func checkSingle2x2Deadlock(ctx *Context, p *Problem, crates BitSet, position Position, direction Direction) bool {
	width := Direction(ctx.width)
	absDir := direction
	if absDir < 0 {
		absDir = -absDir
	}
	orthoA := width + 1 - absDir
	orthoB := -orthoA

	baseUnsafe := 0
	if !p.goals.Get(position) {
		baseUnsafe = 1
	}

	p10 := position + Position(direction)
	c10, w10 := crates.Get(p10), p.walls.Get(p10)
	if !c10 && !w10 {
		return false
	}
	if c10 && !p.goals.Get(p10) {
		baseUnsafe++
	}

	for _, ortho := range [2]Direction{orthoA, orthoB} {
		unsafe := baseUnsafe
		p01 := position + Position(ortho)
		c01, w01 := crates.Get(p01), p.walls.Get(p01)
		if !c01 && !w01 {
			continue
		}
		if c01 && !p.goals.Get(p01) {
			unsafe++
		}
		p11 := p10 + Position(ortho)
		c11, w11 := crates.Get(p11), p.walls.Get(p11)
		if !c11 && !w11 {
			continue
		}
		if c11 && !p.goals.Get(p11) {
			unsafe++
		}
		if unsafe > 0 {
			return true
		}
	}
	return false
}

// checkReachability flood-fills from player across every non-wall
// cell, then verifies that the resulting reachable set covers every
// "free object" - a cell where exactly one of {crate, goal} holds,
// i.e. crates XOR goals. This is the newer player-seeded variant
// described by the spec as the intended contract, superseding an
// older goal-seeded flood used earlier in the original source.
func checkReachability(ctx *Context, crates, goals, walls BitSet, player Position) bool {
	reach := newBitSet(ctx.bitsetSize)
	stack := make([]Position, 0, ctx.area)
	stack = append(stack, player)
	reach.Set(player)
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, direction := range ctx.directions {
			next := current + Position(direction)
			if walls.Get(next) || reach.Get(next) {
				continue
			}
			reach.Set(next)
			stack = append(stack, next)
		}
	}
	freeObjects := newBitSet(ctx.bitsetSize)
	crates.Xor(goals, freeObjects)
	return freeObjects.CoversAll(reach)
}

// errors.go
// Copyright (C) 2024 Yahia Zakaria
// This file defines the sentinel errors used by the ambient layers
// (cmd/sokosolve returns them) and the helpers used to wrap them with
// call-specific detail.

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

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCompilable is returned when a level string fails the
	// structural checks in Problem.Parse (wrong player count, mismatched
	// goal/crate counts, or an already-solved layout).
	ErrNotCompilable = errors.New("sokosolve: level is not compilable")

	// ErrNotPotentiallySolvable is returned when a level compiles but
	// fails static pruning: a closed 2x2 deadlock, a crate resting on a
	// deadlock cell, or an unreachable crate/goal.
	ErrNotPotentiallySolvable = errors.New("sokosolve: level failed static solvability checks")

	// ErrIterationLimit is returned when a search hits its iteration cap
	// or fills the arena before finding a solution - per spec, Result
	// does not distinguish the two (both set LimitExceeded).
	ErrIterationLimit = errors.New("sokosolve: search reached the iteration or capacity limit")
)

// resultError translates a Result into the sentinel error that best
// describes why it did not carry a solution, or nil if it did.
func resultError(r Result) error {
	if r.Solved {
		return nil
	}
	if r.LimitExceeded {
		return fmt.Errorf("%w: %d iterations", ErrIterationLimit, r.Iterations)
	}
	return errors.New("sokosolve: search exhausted the frontier without a solution")
}

// wrapParse returns ErrNotCompilable or ErrNotPotentiallySolvable
// annotated with levelName, or nil if the problem solved cleanly enough
// to search.
func wrapParse(levelName string, compilable, potentiallySolvable bool) error {
	if !compilable {
		return fmt.Errorf("%w: %s", ErrNotCompilable, levelName)
	}
	if !potentiallySolvable {
		return fmt.Errorf("%w: %s", ErrNotPotentiallySolvable, levelName)
	}
	return nil
}

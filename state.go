// state.go
// Copyright (C) 2024 Yahia Zakaria
// This file defines the search node; its arena lives in the Context.

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

// State is a single node of the search tree. The root's parent is nil
// and its action is the zero byte. A non-push child shares its
// parent's crates reference (an aliased, read-only borrow); a push
// child owns a freshly bump-allocated crates vector.
type State struct {
	parent    *State
	action    Action
	player    Position
	crates    BitSet
	cost      Cost
	heuristic Cost
	priority  float64
	heapIndex int
}

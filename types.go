// types.go
// Copyright (C) 2024 Yahia Zakaria
// This file declares the primitive data types shared across the
// sokosolve package.

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

// Position indexes a cell on the padded grid as y*width + x.
type Position int32

// Direction is a signed offset in Position units, one of
// {-1, +1, +width, -width}.
type Direction int32

// Cost counts path length or push distance. In a Problem's heuristic
// table the value Area is the sentinel for "no goal reachable".
type Cost uint16

// Count tallies crates, goals, or players while parsing a level.
type Count uint16

// Action is one character of a solution string: lowercase for a plain
// move, uppercase for a move that pushes a crate.
type Action byte

// lowerActions and upperActions map direction index -> action,
// in the fixed order {-1, +1, +width, -width} -> "lrdu" / "LRDU".
var lowerActions = [4]Action{'l', 'r', 'd', 'u'}
var upperActions = [4]Action{'L', 'R', 'D', 'U'}

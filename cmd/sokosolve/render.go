// cmd/sokosolve/render.go
// Copyright (C) 2024 Yahia Zakaria
// This file renders levels, raw bit-vectors, and solutions for the
// solve and show commands' terminal output.

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

package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yahiaetman/sokosolve"
)

var (
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	crateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	goalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	bitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// FormatLevel renders a level exactly as the tile grammar describes
// it, color-coded by tile kind, for terminals that support ANSI color.
// It visits every cell of the padded grid in row-major order, mirroring
// the original solver's own level dump.
func FormatLevel(ctx *sokosolve.Context, crates, goals, walls sokosolve.BitSet, player sokosolve.Position) string {
	var b strings.Builder
	width, height := ctx.Width(), ctx.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			position := sokosolve.Position(y*width + x)
			b.WriteString(formatCell(crates, goals, walls, player, position))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func formatCell(crates, goals, walls sokosolve.BitSet, player, position sokosolve.Position) string {
	switch {
	case walls.Get(position):
		return wallStyle.Render("W")
	case goals.Get(position) && player == position:
		return playerStyle.Render("+")
	case goals.Get(position) && crates.Get(position):
		return crateStyle.Render("g")
	case goals.Get(position):
		return goalStyle.Render("0")
	case player == position:
		return playerStyle.Render("A")
	case crates.Get(position):
		return crateStyle.Render("1")
	default:
		return "."
	}
}

// FormatBitSet renders a raw bit-vector as a grid of '#' (set) and '.'
// (clear), for debugging deadlock maps and reachability scans.
func FormatBitSet(ctx *sokosolve.Context, bits sokosolve.BitSet) string {
	var b strings.Builder
	width, height := ctx.Width(), ctx.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			position := sokosolve.Position(y*width + x)
			if bits.Get(position) {
				b.WriteString(bitStyle.Render("#"))
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatResult renders a search Result as a short human-readable
// summary line.
func FormatResult(algorithm string, r sokosolve.Result) string {
	if r.Solved {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).
			Render(algorithm+": solved in "+strconv.Itoa(len(r.Actions))+" moves, "+strconv.Itoa(int(r.Iterations))+" states") +
			"\n" + r.Actions
	}
	status := "exhausted the frontier"
	if r.LimitExceeded {
		status = "hit the iteration/capacity limit"
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).
		Render(algorithm+": "+status+" after "+strconv.Itoa(int(r.Iterations))+" states")
}

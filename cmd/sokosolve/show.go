// cmd/sokosolve/show.go
// Copyright (C) 2024 Yahia Zakaria
// This file implements `sokosolve show`: parse a level and print its
// tile grid and, with --deadlocks, its static deadlock map, without
// searching. The per-cell heuristic table is not printed.

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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yahiaetman/sokosolve"
)

var (
	showWidth     int
	showHeight    int
	showDeadlocks bool

	showCmd = &cobra.Command{
		Use:   "show [level-file]",
		Short: "Parse a level and print its grid and deadlock map",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
)

func init() {
	showCmd.Flags().IntVar(&showWidth, "width", 0, "level interior width (required)")
	showCmd.Flags().IntVar(&showHeight, "height", 0, "level interior height (required)")
	showCmd.Flags().BoolVar(&showDeadlocks, "deadlocks", false, "also print the static deadlock map")
}

func runShow(cmd *cobra.Command, args []string) error {
	text, err := readLevelText(args)
	if err != nil {
		return err
	}
	if showWidth <= 0 || showHeight <= 0 {
		return fmt.Errorf("sokosolve: --width and --height are required")
	}

	ctx, err := sokosolve.CreateContext(showWidth, showHeight, cfg.Arena.Capacity)
	if err != nil {
		return err
	}
	problem := ctx.AllocateProblem()
	compilable := problem.Parse(text)

	fmt.Print(FormatLevel(ctx, problem.Crates(), problem.Goals(), problem.Walls(), problem.Player()))
	fmt.Printf("\ncompilable: %v, potentially solvable: %v, goals: %d\n",
		compilable, problem.PotentiallySolvable(), problem.GoalCount())

	if showDeadlocks {
		if !compilable {
			fmt.Println("\n(no deadlock map: level did not compile)")
			return nil
		}
		fmt.Println("\ndeadlock map:")
		fmt.Print(FormatBitSet(ctx, problem.Deadlocks()))
	}
	return nil
}

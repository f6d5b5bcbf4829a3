// cmd/sokosolve/solve.go
// Copyright (C) 2024 Yahia Zakaria
// This file implements `sokosolve solve`: parse a single level from a
// file or stdin and search it with the configured algorithm.

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
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yahiaetman/sokosolve"
)

var (
	solveWidth     int
	solveHeight    int
	solveAlgorithm string
	solveMaxIter   uint64
	solveShowLevel bool

	solveCmd = &cobra.Command{
		Use:   "solve [level-file]",
		Short: "Solve a single level",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
)

func init() {
	solveCmd.Flags().IntVar(&solveWidth, "width", 0, "level interior width (required)")
	solveCmd.Flags().IntVar(&solveHeight, "height", 0, "level interior height (required)")
	solveCmd.Flags().StringVar(&solveAlgorithm, "algorithm", "", "bfs, ucs, astar, or greedy (default: from config)")
	solveCmd.Flags().Uint64Var(&solveMaxIter, "max-iterations", 0, "iteration cap (default: from config, where 0 means unlimited)")
	solveCmd.Flags().BoolVar(&solveShowLevel, "show-level", false, "print the parsed level before solving")
}

func readLevelText(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("sokosolve: read level from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("sokosolve: read level file %s: %w", args[0], err)
	}
	return string(data), nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	text, err := readLevelText(args)
	if err != nil {
		return err
	}
	if solveWidth <= 0 || solveHeight <= 0 {
		return fmt.Errorf("sokosolve: --width and --height are required")
	}

	algorithm := solveAlgorithm
	if algorithm == "" {
		algorithm = cfg.Search.Algorithm
	}
	maxIter := solveMaxIter
	if maxIter == 0 {
		maxIter = cfg.Search.MaxIterations
	}

	ctx, err := sokosolve.CreateContext(solveWidth, solveHeight, cfg.Arena.Capacity)
	if err != nil {
		return err
	}
	problem := ctx.AllocateProblem()
	compilable := problem.Parse(text)
	logger.LogParse(context.Background(), args0(args), compilable, problem.PotentiallySolvable())
	if !compilable {
		return sokosolve.ErrNotCompilable
	}
	if solveShowLevel {
		fmt.Print(FormatLevel(ctx, problem.Crates(), problem.Goals(), problem.Walls(), problem.Player()))
	}
	if !problem.PotentiallySolvable() {
		return sokosolve.ErrNotPotentiallySolvable
	}

	started := time.Now()
	result := runAlgorithm(ctx, problem, algorithm, maxIter)
	elapsed := time.Since(started)

	sokosolve.ObserveSolve(algorithm, compilable, problem.PotentiallySolvable(), result, elapsed.Seconds())
	logger.LogSolve(context.Background(), algorithm, args0(args), result, elapsed.Milliseconds())
	fmt.Println(FormatResult(algorithm, result))
	return nil
}

// runAlgorithm dispatches to SolveBFS or SolveAStar with the preset
// implied by algorithm.
func runAlgorithm(ctx *sokosolve.Context, problem *sokosolve.Problem, algorithm string, maxIter uint64) sokosolve.Result {
	search := sokosolve.SearchConfig{Algorithm: algorithm}
	hFactor, gFactor, useAStar := search.Preset()
	if !useAStar {
		return sokosolve.SolveBFS(ctx, problem, maxIter)
	}
	return sokosolve.SolveAStar(ctx, problem, hFactor, gFactor, maxIter)
}

func args0(args []string) string {
	if len(args) == 0 {
		return "<stdin>"
	}
	return args[0]
}

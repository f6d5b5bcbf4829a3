// cmd/sokosolve/bench.go
// Copyright (C) 2024 Yahia Zakaria
// This file implements `sokosolve bench`: solve every level file in a
// directory concurrently, each under its own Context, and report a
// summary table.

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
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yahiaetman/sokosolve"
)

var (
	benchWidth       int
	benchHeight      int
	benchAlgorithm   string
	benchConcurrency int

	benchCmd = &cobra.Command{
		Use:   "bench <level-dir>",
		Short: "Solve every level in a directory concurrently and report timings",
		Args:  cobra.ExactArgs(1),
		RunE:  runBench,
	}
)

func init() {
	benchCmd.Flags().IntVar(&benchWidth, "width", 0, "level interior width shared by every level (required)")
	benchCmd.Flags().IntVar(&benchHeight, "height", 0, "level interior height shared by every level (required)")
	benchCmd.Flags().StringVar(&benchAlgorithm, "algorithm", "", "bfs, ucs, astar, or greedy (default: from config)")
	benchCmd.Flags().IntVar(&benchConcurrency, "concurrency", 0, "max levels solved at once (default: GOMAXPROCS)")
}

// benchOutcome is one row of the bench report.
type benchOutcome struct {
	name       string
	result     sokosolve.Result
	compilable bool
	solvable   bool
	elapsed    time.Duration
	err        error
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchWidth <= 0 || benchHeight <= 0 {
		return fmt.Errorf("sokosolve: --width and --height are required")
	}
	algorithm := benchAlgorithm
	if algorithm == "" {
		algorithm = cfg.Search.Algorithm
	}

	entries, err := os.ReadDir(args[0])
	if err != nil {
		return fmt.Errorf("sokosolve: read level directory: %w", err)
	}

	g, gctx := errgroup.WithContext(context.Background())
	limit := benchConcurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	var mu sync.Mutex
	var outcomes []benchOutcome

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(args[0], entry.Name())
		name := entry.Name()
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			outcome := solveOneLevel(name, path, algorithm)
			mu.Lock()
			outcomes = append(outcomes, outcome)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].name < outcomes[j].name })
	printBenchReport(outcomes)
	return nil
}

// solveOneLevel parses and solves a single level file under its own
// Context, so that concurrent goroutines never share arena state.
func solveOneLevel(name, path, algorithm string) benchOutcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return benchOutcome{name: name, err: err}
	}
	ctx, err := sokosolve.CreateContext(benchWidth, benchHeight, cfg.Arena.Capacity)
	if err != nil {
		return benchOutcome{name: name, err: err}
	}
	problem := ctx.AllocateProblem()
	compilable := problem.Parse(string(data))
	solvable := problem.PotentiallySolvable()

	started := time.Now()
	var result sokosolve.Result
	if compilable && solvable {
		result = runAlgorithm(ctx, problem, algorithm, cfg.Search.MaxIterations)
	}
	elapsed := time.Since(started)

	sokosolve.ObserveSolve(algorithm, compilable, solvable, result, elapsed.Seconds())
	return benchOutcome{name: name, result: result, compilable: compilable, solvable: solvable, elapsed: elapsed}
}

func printBenchReport(outcomes []benchOutcome) {
	var solved, failed int
	for _, o := range outcomes {
		status := "unsolved"
		switch {
		case o.err != nil:
			status = "error: " + o.err.Error()
			failed++
		case !o.compilable:
			status = "not compilable"
			failed++
		case !o.solvable:
			status = "not potentially solvable"
			failed++
		case o.result.Solved:
			status = fmt.Sprintf("solved (%d moves, %d states)", len(o.result.Actions), o.result.Iterations)
			solved++
		default:
			failed++
		}
		fmt.Printf("%-24s %10s  %s\n", o.name, o.elapsed.Round(time.Millisecond), status)
	}
	fmt.Printf("\n%d solved, %d not solved, %d total\n", solved, failed, len(outcomes))
}

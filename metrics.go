// metrics.go
// Copyright (C) 2024 Yahia Zakaria
// This file declares the Prometheus metrics exported by the solve and
// serve commands, following the teacher pack's promauto vector pattern.

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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SolvesTotal counts solve attempts by algorithm and outcome
	// (solved, unsolved, iteration_limit, not_compilable,
	// not_potentially_solvable). An exhausted arena is counted as
	// iteration_limit, since Result does not tell the two apart.
	SolvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sokosolve",
		Name:      "solves_total",
		Help:      "Total solve attempts by algorithm and outcome",
	}, []string{"algorithm", "outcome"})

	// SolveIterations observes how many states a solve expanded.
	SolveIterations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sokosolve",
		Name:      "solve_iterations",
		Help:      "States expanded per solve call",
		Buckets:   prometheus.ExponentialBuckets(4, 4, 12),
	}, []string{"algorithm"})

	// SolveDurationSeconds observes wall-clock solve latency.
	SolveDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sokosolve",
		Name:      "solve_duration_seconds",
		Help:      "Solve call latency in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 16),
	}, []string{"algorithm"})

	// SolutionLength observes the length of solutions found.
	SolutionLength = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sokosolve",
		Name:      "solution_length",
		Help:      "Number of moves in a found solution",
		Buckets:   prometheus.LinearBuckets(5, 10, 15),
	}, []string{"algorithm"})

	// ProblemCacheHits counts problem cache hits and misses.
	ProblemCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sokosolve",
		Name:      "problem_cache_total",
		Help:      "Problem cache lookups by result",
	}, []string{"result"})
)

// outcomeLabel maps a Result and parse outcome to the "outcome" label
// value used by SolvesTotal.
func outcomeLabel(compilable, potentiallySolvable bool, r Result) string {
	if !compilable {
		return "not_compilable"
	}
	if !potentiallySolvable {
		return "not_potentially_solvable"
	}
	if r.Solved {
		return "solved"
	}
	if r.LimitExceeded {
		return "iteration_limit"
	}
	return "unsolved"
}

// ObserveSolve records a solve attempt's outcome in SolvesTotal, and for
// a compilable level also its duration and iterations; SolutionLength
// is observed only when the level was solved, and ProblemCacheHits is
// left to the cache. elapsedSeconds should come from a single time.Since call made
// by the caller, since metrics.go does not call time.Now itself.
func ObserveSolve(algorithm string, compilable, potentiallySolvable bool, r Result, elapsedSeconds float64) {
	outcome := outcomeLabel(compilable, potentiallySolvable, r)
	SolvesTotal.WithLabelValues(algorithm, outcome).Inc()
	if !compilable {
		return
	}
	SolveDurationSeconds.WithLabelValues(algorithm).Observe(elapsedSeconds)
	SolveIterations.WithLabelValues(algorithm).Observe(float64(r.Iterations))
	if r.Solved {
		SolutionLength.WithLabelValues(algorithm).Observe(float64(len(r.Actions)))
	}
}

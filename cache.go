// cache.go
// Copyright (C) 2024 Yahia Zakaria
// This file implements an LRU cache of parsed Problems, keyed by a
// caller-chosen string (the server uses the grid dimensions plus the
// level text), following the teacher's own LRU-wrapped-cache-map
// pattern.

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
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// cachedProblem is what ProblemCache stores per entry: the parsed
// Problem together with the flags Parse produced, since a cache hit
// must not have to re-run Compilable()/PotentiallySolvable() checks
// the caller already performed once.
type cachedProblem struct {
	problem             *Problem
	compilable          bool
	potentiallySolvable bool
}

// ProblemCache memoizes Problem.Parse results for repeatedly-solved
// level text - useful for a server fielding the
// same handful of levels from many concurrent requests, or a batch
// runner re-solving a level under different search presets.
type ProblemCache struct {
	mu  sync.Mutex
	lru *simplelru.LRU
}

// NewProblemCache creates a cache holding up to size parsed problems.
// A size <= 0 disables caching; Lookup then always calls fetch.
func NewProblemCache(size int) *ProblemCache {
	pc := &ProblemCache{}
	if size > 0 {
		pc.lru, _ = simplelru.NewLRU(size, nil)
	}
	return pc
}

// Lookup returns the cached Problem for key, or calls fetch to parse a
// fresh one and caches it. fetch is called at most once per
// miss even under concurrent access, since Lookup holds the cache
// mutex for its duration - fetch should be as fast as a single Parse
// call and not itself block on the cache.
func (pc *ProblemCache) Lookup(key string, fetch func() *Problem) (problem *Problem, compilable, potentiallySolvable bool) {
	if pc.lru == nil {
		ProblemCacheHits.WithLabelValues("disabled").Inc()
		p := fetch()
		return p, p.Compilable(), p.PotentiallySolvable()
	}
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if v, ok := pc.lru.Get(key); ok {
		ProblemCacheHits.WithLabelValues("hit").Inc()
		cp := v.(*cachedProblem)
		return cp.problem, cp.compilable, cp.potentiallySolvable
	}
	ProblemCacheHits.WithLabelValues("miss").Inc()
	p := fetch()
	cp := &cachedProblem{problem: p, compilable: p.Compilable(), potentiallySolvable: p.PotentiallySolvable()}
	pc.lru.Add(key, cp)
	return cp.problem, cp.compilable, cp.potentiallySolvable
}

// Purge empties the cache.
func (pc *ProblemCache) Purge() {
	if pc.lru == nil {
		return
	}
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.lru.Purge()
}

// Len returns the number of entries currently cached.
func (pc *ProblemCache) Len() int {
	if pc.lru == nil {
		return 0
	}
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.lru.Len()
}

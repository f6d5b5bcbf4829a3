package sokosolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProblemCacheReturnsSameProblemOnHit(t *testing.T) {
	ctx, err := CreateContext(4, 4, 1000)
	assert.NoError(t, err)
	cache := NewProblemCache(8)

	fetchCount := 0
	fetch := func() *Problem {
		fetchCount++
		p := ctx.AllocateProblem()
		p.Parse(solvableFourByFour)
		return p
	}

	p1, compilable1, solvable1 := cache.Lookup(solvableFourByFour, fetch)
	p2, compilable2, solvable2 := cache.Lookup(solvableFourByFour, fetch)

	assert.Same(t, p1, p2)
	assert.Equal(t, compilable1, compilable2)
	assert.Equal(t, solvable1, solvable2)
	assert.Equal(t, 1, fetchCount)
	assert.Equal(t, 1, cache.Len())
}

func TestProblemCacheMissPerKey(t *testing.T) {
	ctx, err := CreateContext(4, 4, 1000)
	assert.NoError(t, err)
	cache := NewProblemCache(8)

	fetchA := func() *Problem {
		p := ctx.AllocateProblem()
		p.Parse(solvableFourByFour)
		return p
	}
	fetchB := func() *Problem {
		p := ctx.AllocateProblem()
		p.Parse("..0.|..+.|.1.1|.WW.")
		return p
	}

	pa, _, _ := cache.Lookup("a", fetchA)
	pb, _, _ := cache.Lookup("b", fetchB)
	assert.NotSame(t, pa, pb)
	assert.Equal(t, 2, cache.Len())
}

func TestProblemCacheDisabledWhenSizeZero(t *testing.T) {
	ctx, err := CreateContext(4, 4, 1000)
	assert.NoError(t, err)
	cache := NewProblemCache(0)

	fetchCount := 0
	fetch := func() *Problem {
		fetchCount++
		p := ctx.AllocateProblem()
		p.Parse(solvableFourByFour)
		return p
	}
	cache.Lookup("x", fetch)
	cache.Lookup("x", fetch)
	assert.Equal(t, 2, fetchCount)
	assert.Equal(t, 0, cache.Len())
}

func TestProblemCachePurge(t *testing.T) {
	ctx, err := CreateContext(4, 4, 1000)
	assert.NoError(t, err)
	cache := NewProblemCache(8)
	cache.Lookup("x", func() *Problem {
		p := ctx.AllocateProblem()
		p.Parse(solvableFourByFour)
		return p
	})
	assert.Equal(t, 1, cache.Len())
	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

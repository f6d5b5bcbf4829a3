package sokosolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, width, height int) *Context {
	ctx, err := CreateContext(width, height, 100000)
	require.NoError(t, err)
	return ctx
}

func TestParseRejectsMismatchedGoalsAndCrates(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	p := ctx.AllocateProblem()
	compilable := p.Parse("....|..+.|.11.|....")
	assert.False(t, compilable)
	assert.False(t, p.Compilable())
	assert.False(t, p.PotentiallySolvable())
}

func TestParseCompilableButNotSolved(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	p := ctx.AllocateProblem()
	compilable := p.Parse("..0.|..+.|.1.1|.WW.")
	assert.True(t, compilable)

	r := SolveBFS(ctx, p, 10000)
	assert.False(t, r.Solved)
	assert.False(t, r.LimitExceeded)
}

func TestParseDetectsStaticDeadlock(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	p := ctx.AllocateProblem()
	compilable := p.Parse(".10.|..A.|0110|0110")
	assert.True(t, compilable)
	assert.False(t, p.PotentiallySolvable())

	r := SolveBFS(ctx, p, 10000)
	assert.False(t, r.Solved)
}

func TestParseIdempotent(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	p := ctx.AllocateProblem()
	level := "..0.|..+.|.11.|...."
	p.Parse(level)
	deadlocksFirst := make(BitSet, len(p.deadlocks))
	copy(deadlocksFirst, p.deadlocks)
	heuristicsFirst := append([]Cost{}, p.heuristics...)

	p.Parse(level)
	assert.Equal(t, 0, deadlocksFirst.Compare(p.deadlocks))
	assert.Equal(t, heuristicsFirst, p.heuristics)
}

func TestParseStopsAtNulByte(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	p := ctx.AllocateProblem()
	level := "..0.\x00..+.|.11.|...."
	compilable := p.Parse(level)
	// Parsing stops after the first row; the player is never read, so
	// the level is under-specified and will not compile.
	assert.False(t, compilable)
}

func TestParseSkipsUnrecognizedCharacters(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	p := ctx.AllocateProblem()
	withSeparators := p.Parse("..0.|..+.|.11.|....")

	ctx2 := newTestContext(t, 4, 4)
	p2 := ctx2.AllocateProblem()
	withoutSeparators := p2.Parse("..0...+..11.....")

	assert.Equal(t, withSeparators, withoutSeparators)
	assert.Equal(t, p.Player(), p2.Player())
	assert.Equal(t, p.GoalCount(), p2.GoalCount())
}

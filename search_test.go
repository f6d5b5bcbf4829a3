package sokosolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const solvableFourByFour = "..0.|..+.|.11.|...."

func TestSolveBFSFindsTwelveMoveSolution(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	p := ctx.AllocateProblem()
	require.True(t, p.Parse(solvableFourByFour))
	require.True(t, p.PotentiallySolvable())

	r := SolveBFS(ctx, p, 10000)
	require.True(t, r.Solved)
	assert.Len(t, r.Actions, 12)
}

func TestSolveAStarMatchesBFSLength(t *testing.T) {
	ctxBFS := newTestContext(t, 4, 4)
	pBFS := ctxBFS.AllocateProblem()
	require.True(t, pBFS.Parse(solvableFourByFour))
	bfs := SolveBFS(ctxBFS, pBFS, 10000)
	require.True(t, bfs.Solved)

	ctxAStar := newTestContext(t, 4, 4)
	pAStar := ctxAStar.AllocateProblem()
	require.True(t, pAStar.Parse(solvableFourByFour))
	astar := SolveAStar(ctxAStar, pAStar, 1, 1, 10000)
	require.True(t, astar.Solved)

	assert.Equal(t, len(bfs.Actions), len(astar.Actions))
}

func TestSolveGreedyFindsSomeSolution(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	p := ctx.AllocateProblem()
	require.True(t, p.Parse(".Wg.|gW..|.WWW|A.10"))
	require.True(t, p.PotentiallySolvable())

	r := SolveAStar(ctx, p, 1, 0, 10000)
	assert.True(t, r.Solved)
}

func TestSolveBFSOnStaticallyUnsolvableLevelReturnsEmpty(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	p := ctx.AllocateProblem()
	require.True(t, p.Parse(".10.|..A.|0110|0110"))
	require.False(t, p.PotentiallySolvable())

	r := SolveBFS(ctx, p, 10000)
	assert.False(t, r.Solved)
	assert.False(t, r.LimitExceeded)
	assert.Equal(t, uint64(0), r.Iterations)
}

func TestSolveDeterministic(t *testing.T) {
	ctx1 := newTestContext(t, 4, 4)
	p1 := ctx1.AllocateProblem()
	require.True(t, p1.Parse(solvableFourByFour))
	r1 := SolveBFS(ctx1, p1, 10000)

	ctx2 := newTestContext(t, 4, 4)
	p2 := ctx2.AllocateProblem()
	require.True(t, p2.Parse(solvableFourByFour))
	r2 := SolveBFS(ctx2, p2, 10000)

	assert.Equal(t, r1.Actions, r2.Actions)
	assert.Equal(t, r1.Iterations, r2.Iterations)
}

func TestSolveOneIterationLimitExceeded(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	p := ctx.AllocateProblem()
	require.True(t, p.Parse(solvableFourByFour))

	r := SolveBFS(ctx, p, 1)
	if !r.Solved {
		assert.True(t, r.LimitExceeded)
	}
}

func TestSolveZeroCapacityExhausts(t *testing.T) {
	ctx, err := CreateContext(4, 4, 1)
	require.NoError(t, err)
	p := ctx.AllocateProblem()
	require.True(t, p.Parse(solvableFourByFour))

	r := SolveBFS(ctx, p, 0)
	assert.False(t, r.Solved)
	assert.True(t, r.LimitExceeded)
}

func TestSolutionRoundTrip(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	p := ctx.AllocateProblem()
	require.True(t, p.Parse(solvableFourByFour))
	r := SolveBFS(ctx, p, 10000)
	require.True(t, r.Solved)

	player := p.Player()
	crates := newBitSet(ctx.bitsetSize)
	crates.CopyFrom(p.Crates())

	for _, action := range []byte(r.Actions) {
		directionIndex := directionIndexFor(t, action)
		direction := ctx.directions[directionIndex]
		next := player + Position(direction)
		require.False(t, p.Walls().Get(next), "action %q walked into a wall", action)
		if isUpper(action) {
			require.True(t, crates.Get(next), "push action %q had no crate ahead", action)
			beyond := next + Position(direction)
			require.False(t, p.Walls().Get(beyond), "push action %q pushed into a wall", action)
			require.False(t, crates.Get(beyond), "push action %q pushed into another crate", action)
			crates.Clear(next)
			crates.Set(beyond)
		} else {
			require.False(t, crates.Get(next), "move action %q walked into a crate", action)
		}
		player = next
	}
	assert.True(t, crates.Equal(p.Goals()))
}

func directionIndexFor(t *testing.T, action byte) int {
	for i, a := range lowerActions {
		if byte(a) == action {
			return i
		}
	}
	for i, a := range upperActions {
		if byte(a) == action {
			return i
		}
	}
	t.Fatalf("unrecognized action byte %q", action)
	return -1
}

func isUpper(action byte) bool {
	return action >= 'A' && action <= 'Z'
}

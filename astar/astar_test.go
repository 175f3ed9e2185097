package astar_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/astar"
	"github.com/katalvlaran/npuzzle/bfs"
	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
)

// TestSolve_Errors verifies nil evaluators and bad options are rejected.
func TestSolve_Errors(t *testing.T) {
	_, err := astar.Solve(board.Goal(), nil)
	assert.ErrorIs(t, err, astar.ErrNilHeuristic)

	_, err = astar.Solve(board.Goal(), heuristic.Manhattan, astar.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)
}

// TestSolve_GoalStart covers the zero-move case: nothing expanded, the
// path is exactly [goal].
func TestSolve_GoalStart(t *testing.T) {
	for name, ev := range map[string]heuristic.Evaluator{
		"manhattan": heuristic.Manhattan,
		"misplaced": heuristic.MisplacedTiles,
	} {
		t.Run(name, func(t *testing.T) {
			res, err := astar.Solve(board.Goal(), ev)
			require.NoError(t, err)
			assert.Zero(t, res.Moves)
			assert.Zero(t, res.NodesExpanded)
			require.Len(t, res.Path, 1)
			assert.True(t, res.Path[0].IsGoal())
		})
	}
}

// TestSolve_TwoMoves pins the unique shortest solution and its stats.
func TestSolve_TwoMoves(t *testing.T) {
	start := board.MustNew([]int{1, 2, 3, 4, 0, 6, 7, 5, 8})
	res, err := astar.Solve(start, heuristic.Manhattan)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Moves)
	assert.Equal(t, []board.Move{board.MoveDown, board.MoveRight}, res.MovesApplied)
	assertValidPath(t, start, res.Path, res.MovesApplied)
}

// TestSolve_MatchesBFSMinimum is the optimality property: with either
// admissible evaluator, A* must return the same minimal move count BFS
// does, on fixtures and on random solvable boards.
func TestSolve_MatchesBFSMinimum(t *testing.T) {
	if testing.Short() {
		t.Skip("BFS ground truth is too slow for -short")
	}
	boards := []board.Board{
		board.MustNew([]int{1, 2, 3, 4, 0, 6, 7, 5, 8}),
		board.MustNew([]int{0, 1, 3, 4, 2, 5, 7, 8, 6}),
		board.Shuffle(rand.New(rand.NewSource(1))),
		board.Shuffle(rand.New(rand.NewSource(2))),
		board.Shuffle(rand.New(rand.NewSource(3))),
	}
	for _, start := range boards {
		optimal, err := bfs.Solve(start)
		require.NoError(t, err)

		manhattan, err := astar.Solve(start, heuristic.Manhattan)
		require.NoError(t, err)
		assert.Equal(t, optimal.Moves, manhattan.Moves, "manhattan not optimal on %v", start)
		assertValidPath(t, start, manhattan.Path, manhattan.MovesApplied)

		misplaced, err := astar.Solve(start, heuristic.MisplacedTiles)
		require.NoError(t, err)
		assert.Equal(t, optimal.Moves, misplaced.Moves, "misplaced not optimal on %v", start)
		assertValidPath(t, start, misplaced.Path, misplaced.MovesApplied)

		// The better-informed evaluator should not expand more than BFS.
		assert.LessOrEqual(t, manhattan.NodesExpanded, optimal.NodesExpanded,
			"manhattan expanded more nodes than uninformed BFS on %v", start)
	}
}

// TestSolve_Deterministic pins the insertion-order tie-break: identical
// runs must return identical paths, not merely equal lengths.
func TestSolve_Deterministic(t *testing.T) {
	start := board.Shuffle(rand.New(rand.NewSource(6)))
	a, err := astar.Solve(start, heuristic.Manhattan)
	require.NoError(t, err)
	b, err := astar.Solve(start, heuristic.Manhattan)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestSolve_ExpansionLimit verifies the cap trips cleanly.
func TestSolve_ExpansionLimit(t *testing.T) {
	start := board.MustNew([]int{0, 1, 3, 4, 2, 5, 7, 8, 6})
	_, err := astar.Solve(start, heuristic.Manhattan, astar.WithMaxExpansions(1))
	assert.ErrorIs(t, err, astar.ErrExpansionLimit)
}

// TestSolve_ContextCancelled verifies cooperative cancellation.
func TestSolve_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := board.MustNew([]int{0, 1, 3, 4, 2, 5, 7, 8, 6})
	_, err := astar.Solve(start, heuristic.Manhattan, astar.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSolve_UnsolvableExhausts feeds an odd-parity board directly to the
// strategy; the heap must drain and report ErrFrontierExhausted.
func TestSolve_UnsolvableExhausts(t *testing.T) {
	if testing.Short() {
		t.Skip("drains 181,440 states; too slow for -short")
	}
	start := board.MustNew([]int{1, 2, 3, 4, 5, 6, 8, 7, 0})
	_, err := astar.Solve(start, heuristic.Manhattan)
	assert.ErrorIs(t, err, astar.ErrFrontierExhausted)
}

// TestSolve_OnExpandHook checks the hook fires once per expansion.
// Unlike BFS depths, popped g-costs are not monotone under A*, so only
// the call count is asserted.
func TestSolve_OnExpandHook(t *testing.T) {
	start := board.MustNew([]int{0, 1, 3, 4, 2, 5, 7, 8, 6})
	calls := 0
	res, err := astar.Solve(start, heuristic.Manhattan,
		astar.WithOnExpand(func(board.Board, int) { calls++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, res.NodesExpanded, calls)
}

// assertValidPath replays MovesApplied from the start and checks every
// transition is a single legal blank move ending at the goal.
func assertValidPath(t *testing.T, start board.Board, path []board.Board, moves []board.Move) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0], "path must begin at the start board")
	require.Len(t, moves, len(path)-1)
	cur := start
	for i, m := range moves {
		next, ok := cur.Apply(m)
		require.True(t, ok, "step %d: move %v illegal", i, m)
		require.Equal(t, path[i+1], next, "step %d mismatch", i)
		cur = next
	}
	assert.True(t, cur.IsGoal(), "path must end at the goal")
}

package heuristic_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/bfs"
	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
)

// TestEvaluators_KnownValues pins both estimates on concrete boards.
func TestEvaluators_KnownValues(t *testing.T) {
	cases := []struct {
		name      string
		cells     []int
		misplaced int
		manhattan int
	}{
		{"goal", []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, 0, 0},
		{"two moves out", []int{1, 2, 3, 4, 0, 6, 7, 5, 8}, 2, 2},
		{"four moves out", []int{0, 1, 3, 4, 2, 5, 7, 8, 6}, 4, 4},
		{"one move out", []int{1, 2, 3, 4, 5, 6, 7, 0, 8}, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := board.MustNew(tc.cells)
			assert.Equal(t, tc.misplaced, heuristic.MisplacedTiles(b), "misplaced tiles")
			assert.Equal(t, tc.manhattan, heuristic.Manhattan(b), "manhattan distance")
		})
	}
}

// TestEvaluators_ZeroOnlyAtGoal verifies both estimates vanish exactly at
// the goal and nowhere else, over a random sample.
func TestEvaluators_ZeroOnlyAtGoal(t *testing.T) {
	assert.Zero(t, heuristic.MisplacedTiles(board.Goal()))
	assert.Zero(t, heuristic.Manhattan(board.Goal()))

	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 50; trial++ {
		b := board.Shuffle(rng)
		if b.IsGoal() {
			continue
		}
		assert.Positive(t, heuristic.MisplacedTiles(b), "misplaced zero off goal: %v", b)
		assert.Positive(t, heuristic.Manhattan(b), "manhattan zero off goal: %v", b)
	}
}

// TestEvaluators_Admissible checks both estimates against BFS-computed
// optimal distances: an admissible heuristic never overestimates.
func TestEvaluators_Admissible(t *testing.T) {
	if testing.Short() {
		t.Skip("BFS ground truth is too slow for -short")
	}
	for seed := int64(1); seed <= 4; seed++ {
		b := board.Shuffle(rand.New(rand.NewSource(seed)))
		res, err := bfs.Solve(b)
		require.NoError(t, err, "seed %d", seed)

		optimal := res.Moves
		assert.LessOrEqual(t, heuristic.MisplacedTiles(b), optimal, "misplaced overestimates, seed %d", seed)
		assert.LessOrEqual(t, heuristic.Manhattan(b), optimal, "manhattan overestimates, seed %d", seed)
	}
}

// TestEvaluators_ConsistentStep verifies the consistency property on random
// boards: one move changes each estimate by at most 1.
func TestEvaluators_ConsistentStep(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for trial := 0; trial < 50; trial++ {
		b := board.Shuffle(rng)
		for _, s := range b.Successors() {
			dm := heuristic.Manhattan(s.Board) - heuristic.Manhattan(b)
			assert.LessOrEqual(t, abs(dm), 1, "manhattan jumped by %d on one move", dm)

			dt := heuristic.MisplacedTiles(s.Board) - heuristic.MisplacedTiles(b)
			assert.LessOrEqual(t, abs(dt), 1, "misplaced jumped by %d on one move", dt)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

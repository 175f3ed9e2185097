// Package heuristic implements the admissible distance estimates used by
// A* search: misplaced-tile count and Manhattan distance.
package heuristic

import "github.com/katalvlaran/npuzzle/board"

// Evaluator scores a board with a non-negative estimate of the moves
// remaining to the goal. An Evaluator must be admissible (never above the
// true optimal distance) for A* to return minimal paths.
type Evaluator func(b board.Board) int

// goalIndex[t] is the goal cell index of tile t; entry 0 (the blank) is
// present but never consulted.
var goalIndex [board.Cells]int

func init() {
	for i, t := range board.Goal() {
		goalIndex[t] = i
	}
}

// MisplacedTiles counts non-blank tiles whose current cell differs from
// their goal cell. Range 0..8; 0 exactly at the goal. Admissible and
// consistent: one move relocates one tile, changing the count by at most 1.
// Complexity: O(1) (fixed 9-cell scan).
func MisplacedTiles(b board.Board) int {
	misplaced := 0
	for i, t := range b {
		if t != board.Blank && goalIndex[t] != i {
			misplaced++
		}
	}

	return misplaced
}

// Manhattan sums, over all non-blank tiles, the grid distance
// |row−rowGoal| + |col−colGoal| between current and goal cells.
// 0 exactly at the goal. Admissible and consistent: one move changes a
// single tile's distance by exactly 1.
// Complexity: O(1) (fixed 9-cell scan).
func Manhattan(b board.Board) int {
	distance := 0
	var gi int
	for i, t := range b {
		if t == board.Blank {
			continue
		}
		gi = goalIndex[t]
		distance += abs(i/board.Cols-gi/board.Cols) + abs(i%board.Cols-gi%board.Cols)
	}

	return distance
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

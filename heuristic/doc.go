// Package heuristic provides the two classic 8-puzzle distance estimates
// consumed by the astar package.
//
// What
//
//   - Evaluator: a pure func(board.Board) int scoring the estimated moves
//     to the goal.
//   - MisplacedTiles: count of non-blank tiles off their goal cell (0..8).
//   - Manhattan: sum of per-tile grid distances to goal cells.
//
// Why
//
//	A* requires an admissible estimate to guarantee minimal paths. Both
//	evaluators are admissible and consistent for unit-cost blank moves:
//	a single move can reduce either score by at most 1. Manhattan usually
//	dominates MisplacedTiles in informedness and expands fewer nodes, but
//	neither relation is required for correctness.
//
// Both evaluators return 0 exactly when the board equals the goal.
//
// Complexity: O(1) per call (fixed 9-cell scan), no allocations.
package heuristic

// Package board provides the 8-puzzle state primitives shared by every
// search strategy in github.com/katalvlaran/npuzzle.
//
// What
//
//   - Board: a 3×3 row-major configuration, blank encoded as 0. Board is a
//     fixed-size value type: it copies on assignment, compares with ==, and
//     keys visited-set maps directly (no string canonicalization needed).
//   - New / MustNew: construction with strict permutation validation
//     (exactly one of each value 0..8) surfacing ErrInvalidBoard.
//   - Move: the closed set {Up, Down, Left, Right} of blank directions,
//     with Opposite() for undo reasoning.
//   - Apply / Successors: legal-move application and enumeration, always
//     returning fresh copies in the fixed order Up, Down, Left, Right.
//   - Inversions / Solvable: the parity-based reachability check.
//   - Shuffle: deterministic generation of random solvable boards.
//
// Why
//
//   - Every search strategy (bfs, dfs, astar) consumes exactly this
//     surface: successor generation, goal testing, and equality by content.
//   - Keeping the blank-move mechanics here lets the strategies stay pure
//     frontier/visited-set bookkeeping.
//
// Determinism
//
//	Successors enumerates moves in a fixed order, so every traversal built
//	on it is fully reproducible; Shuffle only draws from the caller's rng.
//
// Solvability
//
//	A board is solvable iff its inversion count (blank excluded) is even.
//	Legal moves preserve this parity, so exactly half of the 9! = 362,880
//	permutations (181,440 boards) can reach the goal. The check detects
//	unsolvable inputs; it never repairs them.
//
// Errors
//
//   - ErrInvalidBoard  if input cells are not a permutation of 0..8.
package board

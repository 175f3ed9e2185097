// Package npuzzle solves the classic 8-puzzle (3×3 sliding tiles) with
// uninformed and informed graph search.
//
// What is npuzzle?
//
//	A small, deterministic search library plus an interactive CLI:
//		• board/     — Board value type, legal moves, successor generation,
//		               validation, parity-based solvability, random shuffles
//		• heuristic/ — misplaced-tiles and Manhattan-distance evaluators
//		• bfs/       — breadth-first search (minimal move count)
//		• dfs/       — iterative depth-first search (bounded, not minimal)
//		• astar/     — A* on f = g + h with a stable insertion-order tie-break
//		• solve/     — validation, solvability gate, uniform strategy dispatch
//		• cmd/npuzzle — cobra CLI with a bubbletea step-through player
//
// Why choose npuzzle?
//
//   - Deterministic – fixed expansion order everywhere; same input, same path
//   - Honest errors – invalid, unsolvable, and exhausted are distinct sentinels
//   - Fresh state per run – no globals, safe for concurrent callers
//   - Pure Go core – the only runtime deps live in the CLI layer
//
// Quick start:
//
//	res, err := solve.Solve([]int{1, 2, 3, 4, 0, 6, 7, 5, 8}, solve.DefaultOptions())
//	if err != nil {
//	    // board.ErrInvalidBoard | solve.ErrUnsolvable | solve.ErrSearchExhausted
//	}
//	fmt.Println(res.Moves, res.MovesApplied) // 2 [Down Right]
//
//	go get github.com/katalvlaran/npuzzle
package npuzzle

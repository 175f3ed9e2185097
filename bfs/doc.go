// Package bfs provides breadth-first search over 8-puzzle boards,
// returning the minimal move sequence from a start board to the goal
// together with search statistics.
//
// What
//
//   - Explore boards in non-decreasing move count from the start board.
//   - Returns a Result containing:
//   - Path: boards from start to goal inclusive
//   - MovesApplied: the blank move for each transition
//   - Moves: solution length (len(Path)−1)
//   - NodesExpanded: boards dequeued and expanded
//   - MaxFrontier: peak queue length
//   - Supports an OnExpand observation hook, a configurable expansion cap,
//     and context cancellation.
//
// Why
//
//   - Uniform move cost makes BFS optimal: the first dequeue of the goal
//     carries a shortest solution. It is the reference strategy the astar
//     package is validated against.
//
// Determinism
//
//	board.Successors enumerates moves in the fixed order Up, Down, Left,
//	Right and BFS enqueues them in that order, so the visit sequence and
//	the returned path are fully reproducible.
//
// Complexity (S = 181,440 reachable boards, branching factor ≤ 4)
//
//   - Time:   O(S) expansions worst case; each board enqueued at most once.
//   - Memory: O(S) for queue, visited set, and parent links. The bound is
//     known in advance because the 8-puzzle state space is finite; use
//     WithMaxExpansions to cap a run below it when desired.
//
// Usage
//
//	res, err := bfs.Solve(start)
//	if err != nil {
//	    // ErrOptionViolation, ErrExpansionLimit, ErrFrontierExhausted,
//	    // or a context error
//	}
//	fmt.Println(res.Moves, res.MovesApplied)
//
// Callers are expected to confirm start.Solvable() first (the solve
// package does this); an unsolvable start exhausts its half of the state
// space and returns ErrFrontierExhausted.
package bfs

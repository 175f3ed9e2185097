// Package dfs provides iterative depth-first search over 8-puzzle boards.
//
// What
//
//   - Explore the deepest unexpanded branch first using an explicit LIFO
//     stack (no recursion, so deep branches cannot blow the goroutine stack).
//   - Returns a Result with the found path, its move sequence, and search
//     statistics (NodesExpanded, MaxFrontier).
//   - Supports an expansion cap, a depth limit, an OnExpand hook, and
//     context cancellation.
//
// Why
//
//	DFS is the uninformed contrast case to bfs: it terminates on the finite
//	8-puzzle state space because boards are marked visited when popped, but
//	its path is typically far longer than the minimum. Use it to study
//	strategy behavior, not to produce short solutions.
//
// Determinism
//
//	Successors are pushed in reverse enumeration order, so the walk
//	descends Up, then Down, Left, Right — identical on every run.
//
// Bounding
//
//	The visited set caps a run at 181,440 solvable boards, so strict
//	termination is guaranteed; WithMaxExpansions and WithMaxDepth bound a
//	run well below that when memory or patience is the constraint. Note a
//	depth limit can prune every path to the goal and surface
//	ErrFrontierExhausted on a solvable board.
//
// Complexity (S = 181,440 reachable boards)
//
//   - Time:   O(S) expansions worst case.
//   - Memory: O(S) for stack, visited set, and parent links.
//
// Errors
//
//   - ErrOptionViolation   for negative MaxExpansions or MaxDepth.
//   - ErrExpansionLimit    when the expansion cap trips.
//   - ErrFrontierExhausted when the stack empties before the goal.
//   - Context errors when the supplied context is cancelled.
package dfs

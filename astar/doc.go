// Package astar implements A* search over 8-puzzle boards.
//
// What
//
//   - Explore boards in ascending f = g + h, where g is the move count from
//     the start and h comes from a caller-supplied heuristic.Evaluator
//     (heuristic.MisplacedTiles or heuristic.Manhattan).
//   - Returns a Result with the optimal path, its move sequence, and
//     search statistics (NodesExpanded, MaxFrontier).
//   - Supports an expansion cap, an OnExpand hook, and context cancellation.
//
// Why
//
//	With an admissible evaluator A* returns the same minimal move count as
//	bfs while expanding far fewer boards; Manhattan typically beats
//	MisplacedTiles on expansions because it is better informed.
//
// Tie-break policy
//
//	Equal f-scores pop in insertion order: every heap entry carries a
//	monotonically increasing sequence number, and Less falls back to it
//	when f ties. The policy is deterministic and fixes which of several
//	equal-cost optimal paths is returned.
//
// Decrease-key
//
//	Lazy, as in the dijkstra heap formulation: a strictly better g for a
//	seen board pushes a duplicate entry; stale entries are skipped on pop
//	once the board is closed with its final cost.
//
// Complexity (S = 181,440 reachable boards, heap size N ≤ pushes)
//
//   - Time:   O(S log N) worst case; in practice a small fraction of S.
//   - Memory: O(S) for the heap, gScore, closed set, and parent links.
//
// Errors
//
//   - ErrNilHeuristic      if no evaluator is supplied.
//   - ErrOptionViolation   for negative MaxExpansions.
//   - ErrExpansionLimit    when the expansion cap trips.
//   - ErrFrontierExhausted when the heap empties before the goal
//     (unsolvable start fed directly to the strategy).
//   - Context errors when the supplied context is cancelled.
package astar

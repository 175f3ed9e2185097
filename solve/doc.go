// Package solve is the unified entry point to the 8-puzzle search
// strategies: validation, the solvability gate, and strategy dispatch.
//
// What
//
//   - CheckSolvable(cells): permutation validation + inversion-parity check.
//   - Solve(cells, opts): validate, gate, then route to bfs, dfs, or astar
//     (with the Manhattan or misplaced-tiles evaluator) and return a
//     strategy-independent Result.
//   - Strategy / Heuristic: closed enums with String and Parse helpers for
//     flag handling in front ends.
//
// Why
//
//	Front ends (the cmd/npuzzle CLI, tests, other programs) should select a
//	strategy through one closed tagged variant dispatched in a single
//	switch, not ad hoc branching; and the solvability gate must run exactly
//	once, before any frontier is built.
//
// Error taxonomy
//
//   - board.ErrInvalidBoard — input is not a permutation of 0..8; nothing ran.
//   - ErrUnsolvable         — valid permutation, odd inversion parity;
//     terminal for this input, no strategy invoked.
//   - ErrSearchExhausted    — a strategy emptied its frontier; unreachable
//     for solvable boards but kept distinct and reportable.
//
// All three are recoverable at the boundary: report and retry with new
// input. Expansion-limit, option, and context errors from the strategy
// packages pass through unwrapped for errors.Is.
//
// Concurrency
//
//	Solve builds fresh per-call search state and shares nothing between
//	invocations, so independent goroutines may call it concurrently.
package solve

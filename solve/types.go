// Package solve defines the strategy/heuristic enums, options, result
// type, and error taxonomy for the unified 8-puzzle solve dispatcher.
package solve

import (
	"context"
	"errors"

	"github.com/katalvlaran/npuzzle/board"
)

// Sentinel errors for the solve boundary. board.ErrInvalidBoard passes
// through unchanged; together the three conditions form the full error
// taxonomy a caller must handle, and all are terminal for the given input
// rather than retryable.
var (
	// ErrUnsolvable indicates a valid permutation whose inversion parity is
	// odd: the goal is unreachable and no strategy is invoked.
	ErrUnsolvable = errors.New("solve: board is unsolvable")

	// ErrSearchExhausted indicates a strategy emptied its frontier without
	// reaching the goal. Unreachable for solvable boards with correct
	// strategies; kept as a distinct reportable outcome rather than a panic.
	ErrSearchExhausted = errors.New("solve: search exhausted without reaching goal")

	// ErrUnknownStrategy indicates an out-of-range Strategy value.
	ErrUnknownStrategy = errors.New("solve: unknown strategy")

	// ErrUnknownHeuristic indicates an out-of-range Heuristic value.
	ErrUnknownHeuristic = errors.New("solve: unknown heuristic")
)

// Strategy selects the search algorithm. The set is closed: dispatch is a
// single switch in Solve, not string comparison scattered through callers.
type Strategy int

const (
	// StrategyBFS explores in breadth-first order; minimal move count.
	StrategyBFS Strategy = iota
	// StrategyDFS explores depth-first; terminates but paths are not minimal.
	StrategyDFS
	// StrategyAStar explores by f = g + h using Options.Heuristic.
	StrategyAStar
)

// strategyNames backs Strategy.String and ParseStrategy.
var strategyNames = map[Strategy]string{
	StrategyBFS:   "bfs",
	StrategyDFS:   "dfs",
	StrategyAStar: "astar",
}

// String returns the lowercase strategy name used by CLI flags.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return "unknown"
}

// ParseStrategy maps a flag string to its Strategy.
// Returns ErrUnknownStrategy for unrecognized input.
func ParseStrategy(s string) (Strategy, error) {
	for st, name := range strategyNames {
		if name == s {
			return st, nil
		}
	}

	return 0, ErrUnknownStrategy
}

// Heuristic selects the A* evaluator; ignored by BFS and DFS.
type Heuristic int

const (
	// HeuristicManhattan sums per-tile grid distances to goal cells.
	// It is the zero value and therefore the default for StrategyAStar.
	HeuristicManhattan Heuristic = iota
	// HeuristicMisplaced counts non-blank tiles off their goal cell.
	HeuristicMisplaced
)

// heuristicNames backs Heuristic.String and ParseHeuristic.
var heuristicNames = map[Heuristic]string{
	HeuristicManhattan: "manhattan",
	HeuristicMisplaced: "misplaced",
}

// String returns the lowercase heuristic name used by CLI flags.
func (h Heuristic) String() string {
	if name, ok := heuristicNames[h]; ok {
		return name
	}

	return "unknown"
}

// ParseHeuristic maps a flag string to its Heuristic.
// Returns ErrUnknownHeuristic for unrecognized input.
func ParseHeuristic(s string) (Heuristic, error) {
	for h, name := range heuristicNames {
		if name == s {
			return h, nil
		}
	}

	return 0, ErrUnknownHeuristic
}

// Options configures a Solve call.
//
// Algo          – which strategy to dispatch (default StrategyBFS).
// Heuristic     – A* evaluator (default HeuristicManhattan; ignored otherwise).
// Ctx           – optional cancellation context (nil means Background).
// MaxExpansions – optional expansion cap forwarded to the strategy (0 = none).
type Options struct {
	Algo          Strategy
	Heuristic     Heuristic
	Ctx           context.Context
	MaxExpansions int
}

// DefaultOptions returns the zero-configuration baseline: BFS, Manhattan,
// background context, no expansion cap.
func DefaultOptions() Options {
	return Options{
		Algo:          StrategyBFS,
		Heuristic:     HeuristicManhattan,
		Ctx:           context.Background(),
		MaxExpansions: 0,
	}
}

// Result is the strategy-independent outcome of a Solve call:
//   - Path: boards from the start to the goal inclusive; a start equal to
//     the goal yields the zero-move path [goal].
//   - MovesApplied: the blank move for each transition.
//   - Moves: len(Path)−1.
//   - NodesExpanded: states popped from the frontier and expanded.
//   - MaxFrontier: peak frontier size during the run.
type Result struct {
	Path          []board.Board
	MovesApplied  []board.Move
	Moves         int
	NodesExpanded int
	MaxFrontier   int
}

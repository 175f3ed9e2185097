// Package bfs provides tunable options and error definitions
// for breadth-first search over 8-puzzle boards.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/npuzzle/board"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrExpansionLimit is returned when the configured expansion cap is
	// reached before the goal is dequeued.
	ErrExpansionLimit = errors.New("bfs: expansion limit reached")

	// ErrFrontierExhausted is returned when the queue empties without
	// reaching the goal. For the 8-puzzle this only happens when the start
	// board is unsolvable; callers should gate on board.Solvable first.
	ErrFrontierExhausted = errors.New("bfs: frontier exhausted before goal")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. a negative expansion cap), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit after
	// that many states have been expanded. A value of 0 explicitly disables
	// the cap; the finite 181,440-board solvable space already bounds the run.
	MaxExpansions int

	// OnExpand is called immediately before a board's successors are
	// generated. Receives the board and its move depth from the start.
	OnExpand func(b board.Board, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no expansion cap (MaxExpansions == 0)
//   - no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnExpand:      func(board.Board, int) {},
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of expanded states.
//
//	n > 0:  abort with ErrExpansionLimit after n expansions
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback to run before each expansion.
func WithOnExpand(fn func(b board.Board, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a BFS run:
//   - Path: boards from the start to the goal inclusive.
//   - MovesApplied: the blank move producing each transition, one per edge.
//   - Moves: len(Path)−1, the solution length in moves.
//   - NodesExpanded: states dequeued and expanded (the goal is not counted).
//   - MaxFrontier: peak queue length observed during the run.
type Result struct {
	Path          []board.Board
	MovesApplied  []board.Move
	Moves         int
	NodesExpanded int
	MaxFrontier   int
}

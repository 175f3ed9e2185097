// Package astar defines options, sentinel errors, and the result type for
// A* search over 8-puzzle boards.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/npuzzle/board"
)

// Sentinel errors for A* execution.
var (
	// ErrNilHeuristic is returned when Solve is invoked without an evaluator.
	ErrNilHeuristic = errors.New("astar: heuristic evaluator is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit is returned when the configured expansion cap is
	// reached before the goal is popped.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrFrontierExhausted is returned when the heap empties without
	// reaching the goal. For the 8-puzzle this only happens when the start
	// board is unsolvable; callers should gate on board.Solvable first.
	ErrFrontierExhausted = errors.New("astar: frontier exhausted before goal")
)

// Option configures A* behavior via functional arguments.
// Invalid options are recorded internally and surfaced as
// ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize A* execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit after
	// that many states have been expanded. 0 disables the cap.
	MaxExpansions int

	// OnExpand is called immediately before a board's successors are
	// generated. Receives the board and its g-cost (moves from the start).
	OnExpand func(b board.Board, g int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no expansion cap
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
func WithOnExpand(fn func(b board.Board, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of an A* run. With an admissible evaluator the
// Path is minimal in move count, matching bfs on the same start board.
type Result struct {
	Path          []board.Board
	MovesApplied  []board.Move
	Moves         int
	NodesExpanded int
	MaxFrontier   int
}

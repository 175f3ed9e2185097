// Package dfs provides tunable options and error definitions
// for depth-first search over 8-puzzle boards.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/npuzzle/board"
)

// Sentinel errors for DFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrExpansionLimit is returned when the configured expansion cap is
	// reached before the goal is popped.
	ErrExpansionLimit = errors.New("dfs: expansion limit reached")

	// ErrFrontierExhausted is returned when the stack empties without
	// reaching the goal: the start was unsolvable, or WithMaxDepth pruned
	// every path to the goal.
	ErrFrontierExhausted = errors.New("dfs: frontier exhausted before goal")
)

// Option configures DFS behavior via functional arguments.
// Invalid options are recorded internally and surfaced as
// ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit after
	// that many states have been expanded. 0 disables the cap. DFS can wander
	// far from the shortest path, so a cap is the practical way to bound a
	// run below the 181,440-board worst case.
	MaxExpansions int

	// MaxDepth, if > 0, stops exploring beyond this move depth: successors
	// that would land deeper are never pushed. 0 explicitly disables the
	// limit. Pruning can make the goal unreachable, surfacing
	// ErrFrontierExhausted even for solvable starts.
	MaxDepth int

	// OnExpand is called immediately before a board's successors are
	// generated. Receives the board and its move depth from the start.
	OnExpand func(b board.Board, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no expansion cap, no depth limit
//   - no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		MaxDepth:      0,
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

// WithMaxDepth stops the search beyond the given move depth.
//
//	d > 0:  successors deeper than d are not pushed
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
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

// Result holds the outcome of a DFS run. Fields mirror the bfs package,
// but Path is NOT guaranteed minimal: DFS commits to the deepest branch
// first and reports whichever path reached the goal.
type Result struct {
	Path          []board.Board
	MovesApplied  []board.Move
	Moves         int
	NodesExpanded int
	MaxFrontier   int
}

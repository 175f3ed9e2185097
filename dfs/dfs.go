// Package dfs implements iterative depth-first search over 8-puzzle boards.
package dfs

import (
	"github.com/katalvlaran/npuzzle/board"
)

// stackItem pairs a board with its move depth from the start.
type stackItem struct {
	b     board.Board
	depth int
}

// walker encapsulates mutable DFS state, freshly built per Solve call.
type walker struct {
	opts        Options
	stack       []stackItem
	visited     map[board.Board]bool
	parent      map[board.Board]board.Board
	via         map[board.Board]board.Move
	expanded    int
	maxFrontier int
}

// Solve runs depth-first search from start toward board.Goal, applying any
// number of functional Options.
//
// The frontier is a LIFO stack. Boards are marked visited when popped, not
// when pushed; stale duplicate stack entries are skipped on pop. Successors
// are pushed in reverse enumeration order so exploration descends Up-first,
// matching board.Successors order — this keeps runs deterministic but gives
// no shortest-path guarantee.
//
// Returns ErrOptionViolation for bad options, ErrExpansionLimit when the
// configured cap trips, ErrFrontierExhausted if the stack empties, or the
// context error on cancellation.
func Solve(start board.Board, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts:    o,
		stack:   make([]stackItem, 0, 64),
		visited: make(map[board.Board]bool, 1024),
		parent:  make(map[board.Board]board.Board, 1024),
		via:     make(map[board.Board]board.Move, 1024),
	}
	w.stack = append(w.stack, stackItem{b: start, depth: 0})

	goal, err := w.loop()
	if err != nil {
		return nil, err
	}

	return w.result(goal), nil
}

// loop pops until the goal appears, the stack empties, the expansion cap
// trips, or the context is cancelled.
func (w *walker) loop() (board.Board, error) {
	for len(w.stack) > 0 {
		if n := len(w.stack); n > w.maxFrontier {
			w.maxFrontier = n
		}
		// cancellation check (once per iteration)
		select {
		case <-w.opts.Ctx.Done():
			return board.Board{}, w.opts.Ctx.Err()
		default:
		}

		item := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// Visited-on-pop: a board may sit on the stack several times via
		// different parents; only the first pop counts.
		if w.visited[item.b] {
			continue
		}
		w.visited[item.b] = true

		if item.b.IsGoal() {
			return item.b, nil
		}

		if err := w.expand(item); err != nil {
			return board.Board{}, err
		}
	}

	return board.Board{}, ErrFrontierExhausted
}

// expand pushes item's unvisited successors in reverse order, recording
// parent links. Parent entries are only written for unvisited boards, so a
// finalized path can never be rewritten by a later push.
func (w *walker) expand(item stackItem) error {
	if w.opts.MaxExpansions > 0 && w.expanded >= w.opts.MaxExpansions {
		return ErrExpansionLimit
	}
	w.expanded++
	w.opts.OnExpand(item.b, item.depth)

	if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
		return nil
	}

	succ := item.b.Successors()
	for i := len(succ) - 1; i >= 0; i-- {
		s := succ[i]
		if w.visited[s.Board] {
			continue
		}
		w.parent[s.Board] = item.b
		w.via[s.Board] = s.Move
		w.stack = append(w.stack, stackItem{b: s.Board, depth: item.depth + 1})
	}

	return nil
}

// result walks the parent chain back from the goal into a start→goal
// Result. Every link points at an earlier-popped board, so the chain is
// acyclic and terminates at the start (which has no parent entry).
func (w *walker) result(goal board.Board) *Result {
	path := []board.Board{goal}
	moves := make([]board.Move, 0, 16)
	for cur := goal; ; {
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		moves = append(moves, w.via[cur])
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return &Result{
		Path:          path,
		MovesApplied:  moves,
		Moves:         len(path) - 1,
		NodesExpanded: w.expanded,
		MaxFrontier:   w.maxFrontier,
	}
}

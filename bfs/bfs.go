// Package bfs implements breadth-first search over 8-puzzle boards,
// returning the shortest move sequence from a start board to the goal.
package bfs

import (
	"github.com/katalvlaran/npuzzle/board"
)

// queueItem pairs a board with its move depth from the start.
type queueItem struct {
	b     board.Board
	depth int
}

// walker encapsulates mutable BFS state. A fresh walker is built per Solve
// call; nothing is shared between runs.
type walker struct {
	opts        Options
	queue       []queueItem
	visited     map[board.Board]bool
	parent      map[board.Board]board.Board
	via         map[board.Board]board.Move
	expanded    int
	maxFrontier int
}

// Solve runs breadth-first search from start toward board.Goal, applying
// any number of functional Options.
//
// The queue is FIFO and boards are marked visited the moment they are
// enqueued, so no board is ever enqueued twice. Because every move costs 1,
// the first time the goal is dequeued its path is minimal in move count.
//
// Returns ErrOptionViolation for bad options, ErrExpansionLimit when the
// configured cap trips, ErrFrontierExhausted if the queue empties (only
// possible for unsolvable starts), or the context error on cancellation.
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
		queue:   make([]queueItem, 0, 64),
		visited: make(map[board.Board]bool, 1024),
		parent:  make(map[board.Board]board.Board, 1024),
		via:     make(map[board.Board]board.Move, 1024),
	}
	w.enqueue(start, 0)

	goal, err := w.loop()
	if err != nil {
		return nil, err
	}

	return w.result(goal), nil
}

// enqueue marks b visited and appends it to the queue at depth d.
// Visited-on-enqueue is what prevents duplicate queue entries.
func (w *walker) enqueue(b board.Board, d int) {
	w.visited[b] = true
	w.queue = append(w.queue, queueItem{b: b, depth: d})
}

// loop processes the queue until the goal is dequeued, the queue empties,
// the expansion cap trips, or the context is cancelled.
func (w *walker) loop() (board.Board, error) {
	for len(w.queue) > 0 {
		if n := len(w.queue); n > w.maxFrontier {
			w.maxFrontier = n
		}
		// cancellation check (once per iteration)
		select {
		case <-w.opts.Ctx.Done():
			return board.Board{}, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		// Goal test on dequeue: the dequeued path is final and minimal.
		if item.b.IsGoal() {
			return item.b, nil
		}

		if err := w.expand(item); err != nil {
			return board.Board{}, err
		}
	}

	return board.Board{}, ErrFrontierExhausted
}

// expand generates item's successors and enqueues each unseen board,
// recording parent links for path reconstruction.
func (w *walker) expand(item queueItem) error {
	if w.opts.MaxExpansions > 0 && w.expanded >= w.opts.MaxExpansions {
		return ErrExpansionLimit
	}
	w.expanded++
	w.opts.OnExpand(item.b, item.depth)

	for _, s := range item.b.Successors() {
		if w.visited[s.Board] {
			continue
		}
		w.parent[s.Board] = item.b
		w.via[s.Board] = s.Move
		w.enqueue(s.Board, item.depth+1)
	}

	return nil
}

// result walks the parent chain back from the goal and reverses it into
// a start→goal Result. The chain is a tree rooted at the start: the start
// has no parent entry, which terminates the walk.
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
	reversePath(path)
	reverseMoves(moves)

	return &Result{
		Path:          path,
		MovesApplied:  moves,
		Moves:         len(path) - 1,
		NodesExpanded: w.expanded,
		MaxFrontier:   w.maxFrontier,
	}
}

func reversePath(p []board.Board) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

func reverseMoves(m []board.Move) {
	for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
		m[i], m[j] = m[j], m[i]
	}
}

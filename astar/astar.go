// Package astar implements A* search over 8-puzzle boards using a min-heap
// priority frontier ordered by f = g + h.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
)

// Solve runs A* from start toward board.Goal using evaluator h for the
// heuristic term, applying any number of functional Options.
//
// Frontier ordering: f = g + h ascending, ties broken by insertion
// sequence (earlier-discovered first). The tie-break is deterministic and
// decides which of several equal-cost optimal paths is returned.
//
// Decrease-key is lazy, as in the classic heap formulation: a strictly
// better path to a seen board pushes a duplicate entry, and stale entries
// are skipped on pop once the board is closed. The goal test happens on
// pop; with an admissible, consistent evaluator the popped g-cost is
// final, so the returned path is minimal in move count.
//
// Returns ErrNilHeuristic, ErrOptionViolation, ErrExpansionLimit,
// ErrFrontierExhausted, or the context error on cancellation.
func Solve(start board.Board, h heuristic.Evaluator, opts ...Option) (*Result, error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &runner{
		h:      h,
		opts:   o,
		gScore: make(map[board.Board]int, 1024),
		closed: make(map[board.Board]bool, 1024),
		parent: make(map[board.Board]board.Board, 1024),
		via:    make(map[board.Board]board.Move, 1024),
	}
	r.init(start)

	goal, err := r.process()
	if err != nil {
		return nil, err
	}

	return r.result(goal), nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	h           heuristic.Evaluator
	opts        Options
	pq          frontier
	seq         int // monotonically increasing push counter; the tie-break
	gScore      map[board.Board]int
	closed      map[board.Board]bool
	parent      map[board.Board]board.Board
	via         map[board.Board]board.Move
	expanded    int
	maxFrontier int
}

// init seeds the heap with the start board at g=0.
func (r *runner) init(start board.Board) {
	r.pq = make(frontier, 0, 64)
	heap.Init(&r.pq)
	r.gScore[start] = 0
	r.push(start, 0)
}

// push inserts b with the given g-cost, stamping it with the next
// sequence number so equal-f entries pop in insertion order.
func (r *runner) push(b board.Board, g int) {
	heap.Push(&r.pq, &frontierItem{
		b:   b,
		g:   g,
		f:   g + r.h(b),
		seq: r.seq,
	})
	r.seq++
	if n := r.pq.Len(); n > r.maxFrontier {
		r.maxFrontier = n
	}
}

// process pops lowest-f entries until the goal surfaces, the heap empties,
// the expansion cap trips, or the context is cancelled.
func (r *runner) process() (board.Board, error) {
	for r.pq.Len() > 0 {
		// cancellation check (once per iteration)
		select {
		case <-r.opts.Ctx.Done():
			return board.Board{}, r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*frontierItem)

		// Skip stale lazy-decrease-key duplicates.
		if r.closed[item.b] {
			continue
		}
		r.closed[item.b] = true

		// Goal test on pop: admissibility makes the popped g final.
		if item.b.IsGoal() {
			return item.b, nil
		}

		if err := r.expand(item); err != nil {
			return board.Board{}, err
		}
	}

	return board.Board{}, ErrFrontierExhausted
}

// expand relaxes every successor of item: g' = g + 1, pushed when it
// strictly improves the best-known cost for that board.
func (r *runner) expand(item *frontierItem) error {
	if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
		return ErrExpansionLimit
	}
	r.expanded++
	r.opts.OnExpand(item.b, item.g)

	ng := item.g + 1
	for _, s := range item.b.Successors() {
		if r.closed[s.Board] {
			continue
		}
		if old, ok := r.gScore[s.Board]; ok && ng >= old {
			continue
		}
		r.gScore[s.Board] = ng
		r.parent[s.Board] = item.b
		r.via[s.Board] = s.Move
		r.push(s.Board, ng)
	}

	return nil
}

// result walks the parent chain back from the goal into a start→goal
// Result; the start has no parent entry, which terminates the walk.
func (r *runner) result(goal board.Board) *Result {
	path := []board.Board{goal}
	moves := make([]board.Move, 0, 16)
	for cur := goal; ; {
		prev, ok := r.parent[cur]
		if !ok {
			break
		}
		moves = append(moves, r.via[cur])
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
		NodesExpanded: r.expanded,
		MaxFrontier:   r.maxFrontier,
	}
}

// frontierItem is one heap entry: a board, its g-cost, its f-score, and
// the insertion sequence number used for stable tie-breaking.
type frontierItem struct {
	b   board.Board
	g   int
	f   int
	seq int
}

// frontier is a min-heap of *frontierItem ordered by f ascending, then by
// insertion sequence. Duplicates from lazy decrease-key remain in the heap
// and are discarded on pop via the closed set.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f-score, falling back to insertion order on ties so the
// earliest-discovered entry wins deterministically.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be a *frontierItem.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the highest-priority element.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Package board implements the 8-puzzle board: construction with strict
// validation, blank location, legal-move enumeration, and goal testing.
//
// Every operation treats Board as immutable: Apply and Successors return
// fresh value copies and never touch the receiver.
package board

import (
	"fmt"
	"strings"
)

// goal is the fixed target configuration 1 2 3 / 4 5 6 / 7 8 0,
// constant for the lifetime of the process.
var goal = Board{1, 2, 3, 4, 5, 6, 7, 8, 0}

// moveOffsets maps each Move to the (row, col) delta the blank travels.
var moveOffsets = [4][2]int{
	MoveUp:    {-1, 0},
	MoveDown:  {1, 0},
	MoveLeft:  {0, -1},
	MoveRight: {0, 1},
}

// expansionOrder fixes the successor enumeration sequence. Keeping it
// stable makes every search strategy fully reproducible.
var expansionOrder = [4]Move{MoveUp, MoveDown, MoveLeft, MoveRight}

// New constructs a Board from exactly 9 cells in row-major order.
// Returns ErrInvalidBoard unless cells is a permutation of 0..8.
// The input slice is copied; the caller may reuse it.
// Complexity: O(1) (fixed 9 cells).
func New(cells []int) (Board, error) {
	var b Board
	if len(cells) != Cells {
		return b, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, len(cells), Cells)
	}
	var seen [Cells]bool
	for i, v := range cells {
		if v < 0 || v >= Cells {
			return Board{}, fmt.Errorf("%w: cell %d holds %d", ErrInvalidBoard, i, v)
		}
		if seen[v] {
			return Board{}, fmt.Errorf("%w: value %d repeats", ErrInvalidBoard, v)
		}
		seen[v] = true
		b[i] = v
	}

	return b, nil
}

// MustNew is New that panics on invalid input. Intended for test fixtures
// and package-level literals, never for untrusted input.
func MustNew(cells []int) Board {
	b, err := New(cells)
	if err != nil {
		panic(err)
	}

	return b
}

// Goal returns the target configuration 1 2 3 / 4 5 6 / 7 8 0.
func Goal() Board { return goal }

// IsGoal reports whether b equals the goal configuration.
// Complexity: O(1).
func (b Board) IsGoal() bool { return b == goal }

// Blank returns the (row, col) position of the blank cell.
// Complexity: O(1) (fixed 9-cell scan).
func (b Board) Blank() (row, col int) {
	for i, v := range b {
		if v == Blank {
			return i / Cols, i % Cols
		}
	}
	// Unreachable for Boards built via New; the zero Board has its
	// blank at index 0, so the loop above always returns.
	return 0, 0
}

// InBounds reports whether (row, col) lies within the 3×3 grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Index converts (row, col) to the row-major cell index.
func Index(row, col int) int {
	return row*Cols + col
}

// Apply slides the blank one cell in direction m, swapping it with the
// adjacent tile, and returns the resulting Board. The second return value
// is false when the blank sits on the edge that blocks m; the receiver is
// returned unchanged in that case. b itself is never mutated.
// Complexity: O(1).
func (b Board) Apply(m Move) (Board, bool) {
	if m < MoveUp || m > MoveRight {
		return b, false
	}
	row, col := b.Blank()
	nr, nc := row+moveOffsets[m][0], col+moveOffsets[m][1]
	if !InBounds(nr, nc) {
		return b, false
	}
	next := b // value copy; the receiver stays intact
	i, j := Index(row, col), Index(nr, nc)
	next[i], next[j] = next[j], next[i]

	return next, true
}

// Successors enumerates every legal blank move from b, in the fixed order
// Up, Down, Left, Right. At most 4 steps are produced; corner cells yield 2
// and edge cells 3. Each Step.Board is an independent copy.
// Complexity: O(1).
func (b Board) Successors() []Step {
	steps := make([]Step, 0, len(expansionOrder))
	var next Board
	var ok bool
	for _, m := range expansionOrder {
		if next, ok = b.Apply(m); ok {
			steps = append(steps, Step{Move: m, Board: next})
		}
	}

	return steps
}

// String renders b as a bordered 3×3 ASCII grid with the blank left empty:
//
//	+---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	...
func (b Board) String() string {
	const rule = "+---+---+---+\n"
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		sb.WriteString(rule)
		for c := 0; c < Cols; c++ {
			if t := b[Index(r, c)]; t == Blank {
				sb.WriteString("|   ")
			} else {
				fmt.Fprintf(&sb, "| %d ", t)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(strings.TrimSuffix(rule, "\n"))

	return sb.String()
}

// Package board defines core types, constants, and sentinel errors
// for the board subpackage of github.com/katalvlaran/npuzzle.
package board

import (
	"errors"
	"strconv"
)

// Board dimensions. The module is fixed to the classic 8-puzzle layout.
const (
	// Rows is the number of rows in the puzzle grid.
	Rows = 3
	// Cols is the number of columns in the puzzle grid.
	Cols = 3
	// Cells is the total number of cells, blank included.
	Cells = Rows * Cols
	// Blank is the tile value representing the empty cell.
	Blank = 0
)

// ErrInvalidBoard indicates input cells are not a permutation of 0..8.
var ErrInvalidBoard = errors.New("board: cells must be a permutation of 0..8")

// Board is a 3×3 puzzle configuration in row-major order, blank encoded as 0.
// Board is a plain value type: assignment copies the whole array, so no
// operation ever mutates a caller's Board, Boards compare with ==, and a
// Board keys visited-set maps directly without canonicalization.
type Board [Cells]int

// Move is the direction the blank travels during a single adjacent swap.
// Legality depends on the blank position: edge and corner cells restrict
// the available directions.
type Move int

// The four blank directions, in canonical expansion order.
const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

// moveNames backs Move.String; index matches the Move constants.
var moveNames = [4]string{"Up", "Down", "Left", "Right"}

// String returns the human-readable direction name, or "Move(n)" for
// out-of-range values.
func (m Move) String() string {
	if m < MoveUp || m > MoveRight {
		return "Move(" + strconv.Itoa(int(m)) + ")"
	}

	return moveNames[m]
}

// Opposite returns the move that undoes m: applying m then m.Opposite()
// restores the original Board. Out-of-range moves return themselves.
func (m Move) Opposite() Move {
	switch m {
	case MoveUp:
		return MoveDown
	case MoveDown:
		return MoveUp
	case MoveLeft:
		return MoveRight
	case MoveRight:
		return MoveLeft
	default:
		return m
	}
}

// Step pairs a legal Move with the Board it produces.
type Step struct {
	Move  Move
	Board Board
}

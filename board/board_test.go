package board_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/npuzzle/board"
)

// TestNew_Errors verifies that malformed inputs are rejected with
// ErrInvalidBoard before any search could run.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells []int
	}{
		{"too short", []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"too long", []int{1, 2, 3, 4, 5, 6, 7, 8, 0, 0}},
		{"duplicate value", []int{1, 1, 3, 4, 5, 6, 7, 8, 0}},
		{"out of range high", []int{1, 2, 3, 4, 5, 6, 7, 9, 0}},
		{"out of range negative", []int{1, 2, 3, 4, 5, 6, 7, -1, 0}},
		{"nil input", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := board.New(tc.cells); !errors.Is(err, board.ErrInvalidBoard) {
				t.Errorf("New(%v): want ErrInvalidBoard, got %v", tc.cells, err)
			}
		})
	}
}

// TestNew_CopiesInput ensures the Board is independent of the caller's slice.
func TestNew_CopiesInput(t *testing.T) {
	cells := []int{1, 2, 3, 4, 5, 6, 7, 8, 0}
	b, err := board.New(cells)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cells[0] = 7
	if b[0] != 1 {
		t.Errorf("Board aliases the input slice: b[0] = %d, want 1", b[0])
	}
}

// TestGoal_Fixture pins the goal configuration and IsGoal.
func TestGoal_Fixture(t *testing.T) {
	want := board.Board{1, 2, 3, 4, 5, 6, 7, 8, 0}
	if g := board.Goal(); g != want {
		t.Fatalf("Goal() = %v; want %v", g, want)
	}
	if !board.Goal().IsGoal() {
		t.Error("Goal().IsGoal() = false")
	}
	if board.MustNew([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}).IsGoal() {
		t.Error("non-goal board reported as goal")
	}
}

// TestBlank covers blank location at a corner, an edge, and the center.
func TestBlank(t *testing.T) {
	cases := []struct {
		name     string
		cells    []int
		row, col int
	}{
		{"corner", []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, 2, 2},
		{"edge", []int{1, 2, 3, 4, 5, 6, 7, 0, 8}, 2, 1},
		{"center", []int{1, 2, 3, 4, 0, 6, 7, 5, 8}, 1, 1},
		{"top-left", []int{0, 1, 3, 4, 2, 5, 7, 8, 6}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row, col := board.MustNew(tc.cells).Blank()
			if row != tc.row || col != tc.col {
				t.Errorf("Blank() = (%d,%d); want (%d,%d)", row, col, tc.row, tc.col)
			}
		})
	}
}

// TestApply_Legality checks move legality against blank position:
// 2 moves at a corner, 3 at an edge, 4 at the center.
func TestApply_Legality(t *testing.T) {
	center := board.MustNew([]int{1, 2, 3, 4, 0, 6, 7, 5, 8})
	for _, m := range []board.Move{board.MoveUp, board.MoveDown, board.MoveLeft, board.MoveRight} {
		if _, ok := center.Apply(m); !ok {
			t.Errorf("center blank: %v should be legal", m)
		}
	}

	corner := board.Goal() // blank at (2,2)
	legal := map[board.Move]bool{board.MoveUp: true, board.MoveLeft: true}
	for _, m := range []board.Move{board.MoveUp, board.MoveDown, board.MoveLeft, board.MoveRight} {
		if _, ok := corner.Apply(m); ok != legal[m] {
			t.Errorf("corner blank: Apply(%v) legality = %v; want %v", m, ok, legal[m])
		}
	}

	if _, ok := center.Apply(board.Move(42)); ok {
		t.Error("out-of-range move reported as legal")
	}
}

// TestApply_DoesNotMutate pins the value-copy contract.
func TestApply_DoesNotMutate(t *testing.T) {
	b := board.MustNew([]int{1, 2, 3, 4, 0, 6, 7, 5, 8})
	snapshot := b
	if _, ok := b.Apply(board.MoveDown); !ok {
		t.Fatal("MoveDown should be legal from the center")
	}
	if b != snapshot {
		t.Errorf("Apply mutated the receiver: %v != %v", b, snapshot)
	}
}

// TestSuccessors verifies count, order, and the inverse-move property:
// every successor differs by exactly one adjacent swap and applying the
// opposite move restores the original board.
func TestSuccessors(t *testing.T) {
	cases := []struct {
		name  string
		cells []int
		count int
	}{
		{"corner", []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, 2},
		{"edge", []int{1, 2, 3, 4, 5, 6, 7, 0, 8}, 3},
		{"center", []int{1, 2, 3, 4, 0, 6, 7, 5, 8}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := board.MustNew(tc.cells)
			steps := b.Successors()
			if len(steps) != tc.count {
				t.Fatalf("len(Successors()) = %d; want %d", len(steps), tc.count)
			}
			prev := board.Move(-1)
			for _, s := range steps {
				if s.Move <= prev {
					t.Errorf("successor order not ascending: %v after %v", s.Move, prev)
				}
				prev = s.Move

				if diff := cellsChanged(b, s.Board); diff != 2 {
					t.Errorf("%v changed %d cells; want exactly 2", s.Move, diff)
				}
				back, ok := s.Board.Apply(s.Move.Opposite())
				if !ok || back != b {
					t.Errorf("%v then %v did not restore the board", s.Move, s.Move.Opposite())
				}
			}
		})
	}
}

// TestMove_Strings pins the names used in CLI output and Example tests.
func TestMove_Strings(t *testing.T) {
	want := map[board.Move]string{
		board.MoveUp:    "Up",
		board.MoveDown:  "Down",
		board.MoveLeft:  "Left",
		board.MoveRight: "Right",
	}
	for m, name := range want {
		if m.String() != name {
			t.Errorf("%d.String() = %q; want %q", m, m.String(), name)
		}
	}
	if got := board.Move(9).String(); got != "Move(9)" {
		t.Errorf("out-of-range String() = %q; want %q", got, "Move(9)")
	}
}

// TestString_Render pins the grid rendering, blank left empty.
func TestString_Render(t *testing.T) {
	want := "+---+---+---+\n" +
		"| 1 | 2 | 3 |\n" +
		"+---+---+---+\n" +
		"| 4 | 5 | 6 |\n" +
		"+---+---+---+\n" +
		"| 7 | 8 |   |\n" +
		"+---+---+---+"
	if got := board.Goal().String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

// cellsChanged counts positions where a and b differ.
func cellsChanged(a, b board.Board) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}

	return n
}

// TestMustNew_Panics ensures fixture misuse fails loudly.
func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew on invalid cells did not panic")
		}
	}()
	_ = board.MustNew([]int{0})
}

// TestBoard_MapKey confirms Boards reached by different move sequences
// collapse to one visited-set entry.
func TestBoard_MapKey(t *testing.T) {
	b := board.MustNew([]int{1, 2, 3, 4, 0, 6, 7, 5, 8})
	// Down then Up returns to b; the two values must hash identically.
	down, _ := b.Apply(board.MoveDown)
	back, _ := down.Apply(board.MoveUp)
	visited := map[board.Board]bool{b: true}
	if !visited[back] {
		t.Error("round-trip board not found in visited map")
	}
	if !reflect.DeepEqual(b, back) {
		t.Errorf("round-trip board differs: %v != %v", b, back)
	}
}

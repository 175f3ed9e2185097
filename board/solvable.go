package board

// Inversions counts pairs of non-blank tiles appearing in reverse order
// relative to the goal, scanning the board in row-major order.
// Complexity: O(1) (fixed 8·7/2 comparisons).
func (b Board) Inversions() int {
	// Flatten without the blank; relative tile order is all that matters.
	tiles := make([]int, 0, Cells-1)
	for _, v := range b {
		if v != Blank {
			tiles = append(tiles, v)
		}
	}
	inversions := 0
	for i := 0; i < len(tiles); i++ {
		for j := i + 1; j < len(tiles); j++ {
			if tiles[i] > tiles[j] {
				inversions++
			}
		}
	}

	return inversions
}

// Solvable reports whether b can reach the goal configuration.
// On a 3×3 board with the blank excluded, a configuration is solvable
// iff its inversion count is even; the parity is invariant under every
// legal move. Exactly half of the 9! permutations pass this check.
func (b Board) Solvable() bool {
	return b.Inversions()%2 == 0
}

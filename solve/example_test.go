package solve_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/solve"
)

// ExampleSolve solves a two-move board with the default strategy (BFS).
func ExampleSolve() {
	res, err := solve.Solve([]int{1, 2, 3, 4, 0, 6, 7, 5, 8}, solve.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Moves, res.MovesApplied)
	fmt.Println(res.Path[len(res.Path)-1].IsGoal())
	// Output:
	// 2 [Down Right]
	// true
}

// ExampleCheckSolvable probes an odd-parity board without running a search.
func ExampleCheckSolvable() {
	ok, err := solve.CheckSolvable([]int{1, 2, 3, 4, 5, 6, 8, 7, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(ok)
	// Output:
	// false
}

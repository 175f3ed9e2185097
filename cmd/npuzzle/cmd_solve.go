package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/solve"
)

var (
	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Solve the board given with --board",
		Run:   runSolve,
	}

	randomCmd = &cobra.Command{
		Use:   "random",
		Short: "Shuffle a solvable board and solve it",
		Run:   runRandom,
	}
)

func runSolve(cmd *cobra.Command, args []string) {
	cells, err := parseCells(boardFlag)
	if err != nil {
		slog.Error("bad --board value", "error", err)
		os.Exit(1)
	}
	solveAndReport(cells)
}

func runRandom(cmd *cobra.Command, args []string) {
	var rng *rand.Rand
	if seedFlag != 0 {
		rng = rand.New(rand.NewSource(seedFlag))
	}
	b := board.Shuffle(rng)
	slog.Debug("shuffled board", "seed", seedFlag, "board", b)
	solveAndReport(b[:])
}

// solveAndReport runs the configured strategy and prints the start board,
// the goal, and the statistics. Exits nonzero on any solver error.
func solveAndReport(cells []int) {
	opts, err := solverOptions()
	if err != nil {
		slog.Error("bad solver flags", "error", err)
		os.Exit(1)
	}

	start, err := board.New(cells)
	if err != nil {
		fmt.Println(errStyle.Render("invalid board: " + err.Error()))
		os.Exit(1)
	}

	res, err := solve.Solve(cells, opts)
	switch {
	case errors.Is(err, solve.ErrUnsolvable):
		fmt.Println(renderBoard(start))
		fmt.Println(errStyle.Render(fmt.Sprintf(
			"unsolvable: %d inversions (odd parity)", start.Inversions())))
		os.Exit(2)
	case err != nil:
		slog.Error("search failed", "algo", opts.Algo, "error", err)
		os.Exit(1)
	}

	for i, b := range res.Path {
		if i == 0 {
			fmt.Println(labelStyle.Render("start"))
		} else {
			fmt.Println(labelStyle.Render(fmt.Sprintf("%d. %v", i, res.MovesApplied[i-1])))
		}
		fmt.Println(renderBoard(b))
	}
	fmt.Println(renderStats(res))
}

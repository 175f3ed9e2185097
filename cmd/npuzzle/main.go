// Command npuzzle is a terminal front end for the 8-puzzle solver:
// solve a given board, solve a random one, or step through a solution
// interactively.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	boardFlag   string
	algoFlag    string
	heurFlag    string
	maxExpFlag  int
	seedFlag    int64
	verboseFlag bool

	rootCmd = &cobra.Command{
		Use:   "npuzzle",
		Short: "Solve 8-puzzle boards with BFS, DFS, or A*",
		Long: `npuzzle searches sliding-puzzle boards for a path to the goal
configuration. Boards are given as nine comma-separated tiles in
row-major order, 0 marking the blank:

    npuzzle solve --board 1,2,3,4,0,6,7,5,8 --algo astar`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verboseFlag {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&algoFlag, "algo", "bfs", "search strategy: bfs, dfs, or astar")
	rootCmd.PersistentFlags().StringVar(&heurFlag, "heuristic", "manhattan", "A* evaluator: manhattan or misplaced")
	rootCmd.PersistentFlags().IntVar(&maxExpFlag, "max-expansions", 0, "abort after this many expansions (0 = unlimited)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	solveCmd.Flags().StringVar(&boardFlag, "board", "", "nine comma-separated tiles in row-major order, 0 is the blank")
	_ = solveCmd.MarkFlagRequired("board")

	randomCmd.Flags().Int64Var(&seedFlag, "seed", 0, "shuffle seed (0 = fixed default)")

	playCmd.Flags().StringVar(&boardFlag, "board", "", "board to play; empty shuffles one from --seed")
	playCmd.Flags().Int64Var(&seedFlag, "seed", 0, "shuffle seed when no board is given")

	rootCmd.AddCommand(solveCmd, randomCmd, playCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

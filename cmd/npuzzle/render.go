package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/solve"
)

var (
	colorTile  = lipgloss.Color("#2CD7C7")
	colorBlank = lipgloss.Color("#2C4A54")
	colorLabel = lipgloss.Color("#20B9B4")
	colorError = lipgloss.Color("#E74C3C")

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTile).
			Bold(true).
			Width(3).
			Align(lipgloss.Center)

	blankStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlank).
			Foreground(colorBlank).
			Width(3).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(colorError)
)

// renderBoard draws b as a 3x3 grid of bordered tiles.
func renderBoard(b board.Board) string {
	rows := make([]string, 0, board.Rows)
	for r := 0; r < board.Rows; r++ {
		cells := make([]string, 0, board.Cols)
		for c := 0; c < board.Cols; c++ {
			v := b[board.Index(r, c)]
			if v == board.Blank {
				cells = append(cells, blankStyle.Render(" "))
				continue
			}
			cells = append(cells, tileStyle.Render(strconv.Itoa(v)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderStats formats the run statistics shown under a solved board.
func renderStats(res solve.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d\n", labelStyle.Render("Moves:"), res.Moves)
	fmt.Fprintf(&sb, "%s %v\n", labelStyle.Render("Sequence:"), res.MovesApplied)
	fmt.Fprintf(&sb, "%s %d expanded, peak frontier %d\n",
		labelStyle.Render("Search:"), res.NodesExpanded, res.MaxFrontier)

	return sb.String()
}

// parseCells converts a comma-separated tile list into the slice
// solve.Solve expects. Validation proper happens in board.New.
func parseCells(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	cells := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("tile %q is not a number", p)
		}
		cells = append(cells, n)
	}

	return cells, nil
}

// solverOptions assembles solve.Options from the shared flags.
func solverOptions() (solve.Options, error) {
	algo, err := solve.ParseStrategy(algoFlag)
	if err != nil {
		return solve.Options{}, fmt.Errorf("%w: %q", err, algoFlag)
	}
	heur, err := solve.ParseHeuristic(heurFlag)
	if err != nil {
		return solve.Options{}, fmt.Errorf("%w: %q", err, heurFlag)
	}

	opts := solve.DefaultOptions()
	opts.Algo = algo
	opts.Heuristic = heur
	opts.MaxExpansions = maxExpFlag

	return opts, nil
}

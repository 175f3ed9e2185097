package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/solve"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Step through a solution interactively",
	Run:   runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	opts, err := solverOptions()
	if err != nil {
		slog.Error("bad solver flags", "error", err)
		os.Exit(1)
	}

	var start board.Board
	if boardFlag != "" {
		cells, err := parseCells(boardFlag)
		if err != nil {
			slog.Error("bad --board value", "error", err)
			os.Exit(1)
		}
		start, err = board.New(cells)
		if err != nil {
			fmt.Println(errStyle.Render("invalid board: " + err.Error()))
			os.Exit(1)
		}
	} else {
		var rng *rand.Rand
		if seedFlag != 0 {
			rng = rand.New(rand.NewSource(seedFlag))
		}
		start = board.Shuffle(rng)
	}

	p := tea.NewProgram(initialModel(start, opts))
	if _, err := p.Run(); err != nil {
		slog.Error("tui crashed", "error", err)
		os.Exit(1)
	}
}

// solvedMsg carries a finished search back into the update loop.
type solvedMsg struct {
	res solve.Result
}

// solveFailedMsg carries a solver error back into the update loop.
type solveFailedMsg struct {
	err error
}

type playModel struct {
	start   board.Board
	opts    solve.Options
	res     solve.Result
	idx     int
	solving bool
	err     error
}

func initialModel(start board.Board, opts solve.Options) playModel {
	return playModel{start: start, opts: opts, solving: true}
}

// solveCmdFor runs the search off the update loop.
func solveCmdFor(start board.Board, opts solve.Options) tea.Cmd {
	return func() tea.Msg {
		res, err := solve.Solve(start[:], opts)
		if err != nil {
			return solveFailedMsg{err: err}
		}

		return solvedMsg{res: res}
	}
}

func (m playModel) Init() tea.Cmd {
	return solveCmdFor(m.start, m.opts)
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case solvedMsg:
		m.res = msg.res
		m.idx = 0
		m.solving = false
		m.err = nil
		return m, nil

	case solveFailedMsg:
		m.err = msg.err
		m.solving = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if !m.solving && m.err == nil && m.idx > 0 {
				m.idx--
			}
		case "right", "l":
			if !m.solving && m.err == nil && m.idx < len(m.res.Path)-1 {
				m.idx++
			}
		case "home", "g":
			m.idx = 0
		case "end", "G":
			if !m.solving && m.err == nil {
				m.idx = len(m.res.Path) - 1
			}
		case "b", "d", "a":
			// Re-solve the same board with another strategy.
			switch msg.String() {
			case "b":
				m.opts.Algo = solve.StrategyBFS
			case "d":
				m.opts.Algo = solve.StrategyDFS
			case "a":
				m.opts.Algo = solve.StrategyAStar
			}
			m.solving = true
			return m, solveCmdFor(m.start, m.opts)
		}
	}

	return m, nil
}

func (m playModel) View() string {
	header := labelStyle.Render("npuzzle") + "  strategy: " + m.opts.Algo.String()
	if m.opts.Algo == solve.StrategyAStar {
		header += "/" + m.opts.Heuristic.String()
	}

	if m.solving {
		return header + "\n\n" + renderBoard(m.start) + "\n\nsolving...\n"
	}
	if m.err != nil {
		return header + "\n\n" + renderBoard(m.start) + "\n\n" +
			errStyle.Render(m.err.Error()) + "\n\npress b/d/a to retry, q to quit\n"
	}

	cur := m.res.Path[m.idx]
	status := fmt.Sprintf("step %d/%d", m.idx, m.res.Moves)
	if m.idx > 0 {
		status += "  last move: " + m.res.MovesApplied[m.idx-1].String()
	}
	if cur.IsGoal() {
		status += "  " + labelStyle.Render("solved!")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		renderBoard(cur),
		"",
		status,
		renderStats(m.res),
		"←/→ step · g/G ends · b/d/a switch strategy · q quit",
	)

	return body + "\n"
}

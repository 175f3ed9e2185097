// Package solve - unified dispatcher for the 8-puzzle search strategies.
//
// This file provides the canonical entry points consumed by front ends:
//
//   - CheckSolvable: validate raw cells and run the parity check.
//   - Solve: validate, gate on solvability, then route to the requested
//     strategy (bfs / dfs / astar with the selected heuristic evaluator).
//
// Design principles:
//   - Deterministic: every strategy below has a fixed expansion order, so
//     identical inputs always return identical paths.
//   - Strict sentinels: the boundary surfaces exactly board.ErrInvalidBoard,
//     ErrUnsolvable, or ErrSearchExhausted; option and limit errors pass
//     through wrapped for errors.Is.
//   - Fresh state per call: frontiers and visited sets live inside one
//     strategy invocation; nothing is shared across calls, so concurrent
//     callers are safe.
package solve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/npuzzle/astar"
	"github.com/katalvlaran/npuzzle/bfs"
	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/dfs"
	"github.com/katalvlaran/npuzzle/heuristic"
)

// CheckSolvable validates cells and reports whether the board can reach
// the goal. Returns board.ErrInvalidBoard for malformed input.
func CheckSolvable(cells []int) (bool, error) {
	b, err := board.New(cells)
	if err != nil {
		return false, err
	}

	return b.Solvable(), nil
}

// Solve validates cells, gates on solvability, and dispatches to the
// strategy selected by opts.Algo.
//
// Validation order:
//  1. permutation check → board.ErrInvalidBoard
//  2. parity check      → ErrUnsolvable (terminal; no strategy invoked)
//  3. enum range checks → ErrUnknownStrategy / ErrUnknownHeuristic
//
// A strategy reporting an exhausted frontier is mapped to
// ErrSearchExhausted; expansion-limit and context errors pass through.
func Solve(cells []int, opts Options) (Result, error) {
	b, err := board.New(cells)
	if err != nil {
		return Result{}, err
	}
	if !b.Solvable() {
		return Result{}, fmt.Errorf("%w: %d inversions", ErrUnsolvable, b.Inversions())
	}

	switch opts.Algo {
	case StrategyBFS:
		res, err := bfs.Solve(b,
			bfs.WithContext(opts.Ctx),
			bfs.WithMaxExpansions(opts.MaxExpansions),
		)
		if err != nil {
			return Result{}, mapStrategyErr(err, bfs.ErrFrontierExhausted)
		}

		return Result{
			Path:          res.Path,
			MovesApplied:  res.MovesApplied,
			Moves:         res.Moves,
			NodesExpanded: res.NodesExpanded,
			MaxFrontier:   res.MaxFrontier,
		}, nil

	case StrategyDFS:
		res, err := dfs.Solve(b,
			dfs.WithContext(opts.Ctx),
			dfs.WithMaxExpansions(opts.MaxExpansions),
		)
		if err != nil {
			return Result{}, mapStrategyErr(err, dfs.ErrFrontierExhausted)
		}

		return Result{
			Path:          res.Path,
			MovesApplied:  res.MovesApplied,
			Moves:         res.Moves,
			NodesExpanded: res.NodesExpanded,
			MaxFrontier:   res.MaxFrontier,
		}, nil

	case StrategyAStar:
		ev, err := evaluator(opts.Heuristic)
		if err != nil {
			return Result{}, err
		}
		res, err := astar.Solve(b, ev,
			astar.WithContext(opts.Ctx),
			astar.WithMaxExpansions(opts.MaxExpansions),
		)
		if err != nil {
			return Result{}, mapStrategyErr(err, astar.ErrFrontierExhausted)
		}

		return Result{
			Path:          res.Path,
			MovesApplied:  res.MovesApplied,
			Moves:         res.Moves,
			NodesExpanded: res.NodesExpanded,
			MaxFrontier:   res.MaxFrontier,
		}, nil

	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownStrategy, opts.Algo)
	}
}

// evaluator resolves the Heuristic enum to its heuristic.Evaluator.
func evaluator(h Heuristic) (heuristic.Evaluator, error) {
	switch h {
	case HeuristicManhattan:
		return heuristic.Manhattan, nil
	case HeuristicMisplaced:
		return heuristic.MisplacedTiles, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownHeuristic, h)
	}
}

// mapStrategyErr renames a strategy's frontier-exhausted sentinel to the
// boundary-level ErrSearchExhausted while keeping the original in the
// errors.Is chain; every other error passes through untouched.
func mapStrategyErr(err, exhausted error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, exhausted) {
		return fmt.Errorf("%w: %v", ErrSearchExhausted, err)
	}

	return err
}

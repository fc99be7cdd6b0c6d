package dlx

import (
	"context"
	"fmt"

	"github.com/jlessner/dlxsudoku/internal/puzzleerr"
)

// Stats accumulates search instrumentation. Solve always returns a
// populated Stats regardless of whether the caller inspects it;
// SolveWithStats adds a time budget, wall-clock timing, and matrix
// sizing on top of it.
type Stats struct {
	NodesVisited int // recursive search calls, including the root call
	Updates      int // row selections tried (search descents past level 0)
	Backtracks   int // row selections undone after their subtree returned
}

// Solve runs Algorithm X to exhaustion or until limit solutions have
// been found (limit <= 0 means unbounded), returning each solution as
// the list of matrix rows in the order the search selected them. The
// search checks ctx for cancellation only when entering a new recursion
// level, bounding how long a cancellation can take to observed effect
// to one column-cover step. A cancelled search returns an error that
// matches both puzzleerr.ErrCancelled and ctx.Err() under errors.Is.
func (a *Arena) Solve(ctx context.Context, limit int) ([][]int, Stats, error) {
	s := &searcher{a: a, ctx: ctx, limit: limit}
	current := make([]int, 0, a.numRows)
	err := s.search(current)
	return s.solutions, s.stats, err
}

type searcher struct {
	a         *Arena
	ctx       context.Context
	limit     int
	solutions [][]int
	stats     Stats
}

// search implements Knuth's Algorithm X: choose the column with the
// fewest remaining rows, try each of its rows, cover the columns that
// row satisfies, recurse, then uncover in reverse order whether or not
// the recursive call found anything.
func (s *searcher) search(partial []int) error {
	s.stats.NodesVisited++

	if s.ctx != nil {
		select {
		case <-s.ctx.Done():
			return fmt.Errorf("%w: %w", puzzleerr.ErrCancelled, s.ctx.Err())
		default:
		}
	}

	a := s.a
	if a.nodes[a.root].right == a.root {
		solution := make([]int, len(partial))
		copy(solution, partial)
		s.solutions = append(s.solutions, solution)
		return nil
	}

	c := s.chooseColumn()
	if a.nodes[c].size == 0 {
		return nil // dead end: an uncovered constraint has no candidate rows left
	}

	cover(a, c)
	defer uncover(a, c)

	for r := a.nodes[c].down; r != c; r = a.nodes[r].down {
		matRow := a.nodes[r].row
		for j := a.nodes[r].right; j != r; j = a.nodes[j].right {
			cover(a, a.nodes[j].column)
		}

		s.stats.Updates++
		if err := s.search(append(partial, matRow)); err != nil {
			for j := a.nodes[r].left; j != r; j = a.nodes[j].left {
				uncover(a, a.nodes[j].column)
			}
			return err
		}
		s.stats.Backtracks++

		for j := a.nodes[r].left; j != r; j = a.nodes[j].left {
			uncover(a, a.nodes[j].column)
		}

		if s.limit > 0 && len(s.solutions) >= s.limit {
			return nil
		}
	}
	return nil
}

// chooseColumn returns the active column header with the fewest
// remaining rows, breaking ties by lowest arena index (equivalently,
// lowest canonical column number, since headers were threaded in
// ascending order by Build).
func (s *searcher) chooseColumn() nodeID {
	a := s.a
	best := a.nodes[a.root].right
	for c := a.nodes[best].right; c != a.root; c = a.nodes[c].right {
		if a.nodes[c].size < a.nodes[best].size {
			best = c
		}
	}
	return best
}

package cover

import (
	"fmt"
	"iter"

	"github.com/jlessner/dlxsudoku/internal/dlx"
	"github.com/jlessner/dlxsudoku/internal/puzzle"
	"github.com/jlessner/dlxsudoku/internal/puzzleerr"
)

// Build streams the (matrixRow, matrixCol) pairs of the complete
// exact-cover matrix for p's dimension, independent of any given
// values already in p. The sequence is consumed directly by dlx.Build
// without ever materializing a dense matrix. Givens are applied
// afterward, as a separate forced-selection step, by PinGivens.
func Build(p *puzzle.Sudoku) iter.Seq2[int, int] {
	d := p.Dimension()
	return func(yield func(int, int) bool) {
		for r := 0; r < d; r++ {
			for c := 0; c < d; c++ {
				block := p.BlockNo(r, c)
				for v := 1; v <= d; v++ {
					row := MatrixRow(d, r, c, v)
					cols := [4]int{
						ColOfCell(d, r, c),
						ColOfRow(d, r, v),
						ColOfCol(d, c, v),
						ColOfBlock(d, block, v),
					}
					for _, col := range cols {
						if !yield(row, col) {
							return
						}
					}
				}
			}
		}
	}
}

// PinGivens covers the matrix row for every completed cell of p,
// forcing those placements before search begins. It returns
// ErrInconsistentGiven if two givens force covering the same column
// twice.
func PinGivens(a *dlx.Arena, p *puzzle.Sudoku) error {
	d := p.Dimension()
	for _, cell := range p.CompletedCells() {
		r, c, v := cell[0], cell[1], cell[2]
		row := MatrixRow(d, r, c, v)
		if err := a.CoverRow(row); err != nil {
			return fmt.Errorf("pinning given (%d,%d)=%d: %w", r, c, v, err)
		}
	}
	return nil
}

// Decode clones original and applies the placements named by
// solutionRows, returning the completed puzzle. A decoded solution that
// isn't actually complete and consistent indicates a solver bug, not a
// caller error.
func Decode(solutionRows []int, original *puzzle.Sudoku) *puzzle.Sudoku {
	d := original.Dimension()
	out := original.Clone()
	for _, row := range solutionRows {
		r, c, v := InverseRow(d, row)
		if err := out.SetCell(r, c, v); err != nil {
			puzzleerr.Invariant("decode: %v", err)
		}
	}
	if !out.IsCompleted() || !out.IsConsistent() {
		puzzleerr.Invariant("decoded solution is incomplete or inconsistent")
	}
	return out
}

// Package puzzle implements the Sudoku value model: an arbitrary-
// dimension grid, its block geometry, region iteration, and the
// consistency check that is a precondition for solving.
package puzzle

import (
	"fmt"
	"iter"
	"math"

	"github.com/jlessner/dlxsudoku/internal/matrix"
	"github.com/jlessner/dlxsudoku/internal/puzzleerr"
	"github.com/jlessner/dlxsudoku/internal/set"
)

// Region names a row, column, or block for iteration and consistency
// checking.
type Region int

const (
	RegionRow Region = iota
	RegionCol
	RegionBlock
)

// Sudoku is a D×D grid, D = blockSide², partitioned into D rows, D
// columns, and D blockSide×blockSide blocks.
type Sudoku struct {
	dimension int
	blockSide int
	cells     *matrix.Matrix[Cell]

	// unsolvedCounts[0] is the number of unset cells; unsolvedCounts[v]
	// for v in [1,D] is the number of cells still needed to place v.
	unsolvedCounts []int
}

// New constructs an empty Sudoku of the given dimension. dimension must
// be a perfect square of an integer ≥ 1.
func New(dimension int) (*Sudoku, error) {
	blockSide, err := integerSqrt(dimension)
	if err != nil {
		return nil, err
	}

	unsolvedCounts := make([]int, dimension+1)
	unsolvedCounts[0] = dimension * dimension
	for v := 1; v <= dimension; v++ {
		unsolvedCounts[v] = dimension
	}

	return &Sudoku{
		dimension:      dimension,
		blockSide:      blockSide,
		cells:          matrix.New(dimension, dimension, Cell{}),
		unsolvedCounts: unsolvedCounts,
	}, nil
}

// integerSqrt returns b such that b*b == dimension, or
// ErrInvalidDimension if no such integer exists.
func integerSqrt(dimension int) (int, error) {
	if dimension < 1 {
		return 0, fmt.Errorf("%w: %d is not a positive perfect square", puzzleerr.ErrInvalidDimension, dimension)
	}
	b := int(math.Sqrt(float64(dimension)))
	// math.Sqrt can be off by one at the boundary; search the
	// neighborhood for the exact integer root.
	for delta := -1; delta <= 1; delta++ {
		if cand := b + delta; cand >= 1 && cand*cand == dimension {
			return cand, nil
		}
	}
	return 0, fmt.Errorf("%w: %d is not a perfect square", puzzleerr.ErrInvalidDimension, dimension)
}

// Dimension returns D, the side length of the grid.
func (s *Sudoku) Dimension() int { return s.dimension }

// BlockSide returns b, the side length of a block, where D = b².
func (s *Sudoku) BlockSide() int { return s.blockSide }

// NumCells returns D².
func (s *Sudoku) NumCells() int { return s.dimension * s.dimension }

// BlockNo returns the index of the block containing cell (r, c).
func (s *Sudoku) BlockNo(r, c int) int {
	s.checkBounds(r, c)
	return (r/s.blockSide)*s.blockSide + c/s.blockSide
}

func (s *Sudoku) checkBounds(r, c int) {
	if r < 0 || r >= s.dimension || c < 0 || c >= s.dimension {
		puzzleerr.OutOfBounds("cell (%d,%d) out of bounds for dimension %d", r, c, s.dimension)
	}
}

// Cell returns the value at (r, c) and whether it is set.
func (s *Sudoku) Cell(r, c int) (int, bool) {
	s.checkBounds(r, c)
	cell := s.cells.At(r, c)
	return cell.value, cell.IsSet()
}

// IsGiven reports whether (r, c) was fixed by the input.
func (s *Sudoku) IsGiven(r, c int) bool {
	s.checkBounds(r, c)
	return s.cells.At(r, c).Given
}

// SetCell places val at (r, c). val must be in [1, D]. Placing a value
// that conflicts with an already-set cell is a programmer error.
func (s *Sudoku) SetCell(r, c, val int) error {
	return s.place(r, c, val, false)
}

// GivenValue places val at (r, c) and marks the cell as given.
func (s *Sudoku) GivenValue(r, c, val int) error {
	return s.place(r, c, val, true)
}

func (s *Sudoku) place(r, c, val int, given bool) error {
	s.checkBounds(r, c)
	if val < 1 || val > s.dimension {
		return fmt.Errorf("%w: value %d out of range [1,%d]", puzzleerr.ErrParse, val, s.dimension)
	}

	cell := s.cells.At(r, c)
	if cell.IsSet() {
		if cell.value != val {
			puzzleerr.Invariant("conflicting values %d and %d at (%d,%d)", cell.value, val, r, c)
		}
		return nil
	}

	cell.value = val
	cell.Given = given
	s.cells.Set(r, c, cell)
	s.unsolvedCounts[0]--
	s.unsolvedCounts[val]--
	if s.unsolvedCounts[val] < 0 {
		puzzleerr.Invariant("too many instances of value %d after placing (%d,%d)", val, r, c)
	}
	return nil
}

// IsCompleted reports whether every cell has a value.
func (s *Sudoku) IsCompleted() bool {
	return s.unsolvedCounts[0] == 0
}

// CompletedCells returns every set (row, col, value) triple in
// row-major order.
func (s *Sudoku) CompletedCells() [][3]int {
	cells := make([][3]int, 0, s.dimension*s.dimension-s.unsolvedCounts[0])
	for r := 0; r < s.dimension; r++ {
		for c := 0; c < s.dimension; c++ {
			if v, ok := s.Cell(r, c); ok {
				cells = append(cells, [3]int{r, c, v})
			}
		}
	}
	return cells
}

// Cells iterates the cells of the given region in row-major order
// within the region: a row left to right, a column top to bottom, a
// block left-to-right-then-top-to-bottom.
func (s *Sudoku) Cells(region Region, index int) iter.Seq2[int, int] {
	d, b := s.dimension, s.blockSide
	return func(yield func(int, int) bool) {
		switch region {
		case RegionRow:
			for c := 0; c < d; c++ {
				if !yield(index, c) {
					return
				}
			}
		case RegionCol:
			for r := 0; r < d; r++ {
				if !yield(r, index) {
					return
				}
			}
		case RegionBlock:
			baseR := (index / b) * b
			baseC := (index % b) * b
			for i := 0; i < d; i++ {
				if !yield(baseR+i/b, baseC+i%b) {
					return
				}
			}
		}
	}
}

// IsConsistent reports whether every row, column, and block has no
// value appearing more than once. O(D³), allocation-free after the
// shared seen-set buffer.
func (s *Sudoku) IsConsistent() bool {
	seen := set.NewSet[int]()
	for _, region := range [...]Region{RegionRow, RegionCol, RegionBlock} {
		for i := 0; i < s.dimension; i++ {
			seen.Clear()
			for r, c := range s.Cells(region, i) {
				v, ok := s.Cell(r, c)
				if !ok {
					continue
				}
				if seen.Contains(v) {
					return false
				}
				seen.Add(v)
			}
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s *Sudoku) Clone() *Sudoku {
	clone := &Sudoku{
		dimension:      s.dimension,
		blockSide:      s.blockSide,
		cells:          s.cells.Clone(),
		unsolvedCounts: make([]int, len(s.unsolvedCounts)),
	}
	copy(clone.unsolvedCounts, s.unsolvedCounts)
	return clone
}

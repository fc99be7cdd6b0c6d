package cover

import (
	"testing"

	"github.com/jlessner/dlxsudoku/internal/puzzle"
)

func TestMatrixRowInverseRoundTrip(t *testing.T) {
	const d = 9
	for r := 0; r < d; r++ {
		for c := 0; c < d; c++ {
			for v := 1; v <= d; v++ {
				row := MatrixRow(d, r, c, v)
				gotR, gotC, gotV := InverseRow(d, row)
				if gotR != r || gotC != c || gotV != v {
					t.Fatalf("InverseRow(MatrixRow(%d,%d,%d)) = (%d,%d,%d)", r, c, v, gotR, gotC, gotV)
				}
			}
		}
	}
}

func TestColumnFormulasAreDistinctPerClass(t *testing.T) {
	const d = 9
	cell := ColOfCell(d, 0, 0)
	row := ColOfRow(d, 0, 1)
	col := ColOfCol(d, 0, 1)
	block := ColOfBlock(d, 0, 1)
	seen := map[int]bool{}
	for _, c := range []int{cell, row, col, block} {
		if seen[c] {
			t.Fatalf("column value %d reused across constraint classes", c)
		}
		seen[c] = true
	}
}

func TestNumColsAndNumRows(t *testing.T) {
	if got := NumCols(9); got != 324 {
		t.Errorf("NumCols(9) = %d, want 324", got)
	}
	if got := NumRows(9); got != 729 {
		t.Errorf("NumRows(9) = %d, want 729", got)
	}
	if got := NumCols(4); got != 64 {
		t.Errorf("NumCols(4) = %d, want 64", got)
	}
	if got := NumRows(4); got != 64 {
		t.Errorf("NumRows(4) = %d, want 64", got)
	}
}

func TestBuildProducesExactlyFourEntriesPerRow(t *testing.T) {
	s, err := puzzle.New(4)
	if err != nil {
		t.Fatal(err)
	}
	counts := make(map[int]int)
	for row, col := range Build(s) {
		counts[row]++
		_ = col
	}
	if len(counts) != NumRows(4) {
		t.Fatalf("got %d distinct rows, want %d", len(counts), NumRows(4))
	}
	for row, n := range counts {
		if n != 4 {
			t.Fatalf("row %d has %d entries, want 4", row, n)
		}
	}
}

func TestDecodeRoundTripsACompletedPuzzle(t *testing.T) {
	s, _ := puzzle.New(4)
	solution := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if err := s.SetCell(r, c, solution[r][c]); err != nil {
				t.Fatal(err)
			}
		}
	}

	var rows []int
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			rows = append(rows, MatrixRow(4, r, c, solution[r][c]))
		}
	}

	decoded := Decode(rows, s)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			v, ok := decoded.Cell(r, c)
			if !ok || v != solution[r][c] {
				t.Errorf("decoded.Cell(%d,%d) = (%d,%v), want (%d,true)", r, c, v, ok, solution[r][c])
			}
		}
	}
}

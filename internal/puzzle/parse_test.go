package puzzle

import "testing"

// TestParseInfersDimensionFromClassic9x9 uses the classic 9x9 puzzle
// with each cell space-separated: the tokenizer merges adjacent digit
// characters into a single multi-digit token, so the traditional
// zero-separator compact notation (where neighboring non-zero digits
// like "195" would otherwise merge into one three-digit token) isn't
// representable under this grammar without per-cell separators.
func TestParseInfersDimensionFromClassic9x9(t *testing.T) {
	text := "5 3 . . 7 . . . . 6 . . 1 9 5 . . . . 9 8 . . . . 6 . 8 . . . 6 . . . 3 4 . . 8 . 3 . . 1 7 . . . 2 . . . 6 . 6 . . . . 2 8 . . . . 4 1 9 . . 5 . . . . 8 . . 7 9"
	s, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Dimension() != 9 {
		t.Fatalf("Dimension() = %d, want 9", s.Dimension())
	}
	v, ok := s.Cell(0, 0)
	if !ok || v != 5 {
		t.Errorf("Cell(0,0) = (%d,%v), want (5,true)", v, ok)
	}
	if s.IsGiven(0, 2) {
		t.Error("Cell(0,2) should be unset, not given")
	}
}

func TestParseTreatsDotAndZeroAsUnknown(t *testing.T) {
	s, err := Parse("1 0 0 0\n0 0 0 2\n0 4 0 0\n0 0 3 .")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Dimension() != 4 {
		t.Fatalf("Dimension() = %d, want 4", s.Dimension())
	}
	if _, ok := s.Cell(0, 1); ok {
		t.Error("Cell(0,1) should be unknown")
	}
	v, ok := s.Cell(3, 2)
	if !ok || v != 3 {
		t.Errorf("Cell(3,2) = (%d,%v), want (3,true)", v, ok)
	}
}

func TestParseMinimalSatisfiable4x4(t *testing.T) {
	s, err := Parse(`
1 . . .
. . . 2
. 4 . .
. . 3 .
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Dimension() != 4 {
		t.Fatalf("Dimension() = %d, want 4", s.Dimension())
	}
	if v, ok := s.Cell(0, 0); !ok || v != 1 {
		t.Errorf("Cell(0,0) = (%d,%v), want (1,true)", v, ok)
	}
}

func TestParseFillsOnlyAsManyCellsAsTokensProvide(t *testing.T) {
	s, err := Parse("1 2 3 4 5")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Dimension() != 9 {
		t.Fatalf("Dimension() = %d, want 9", s.Dimension())
	}
	if v, ok := s.Cell(0, 4); !ok || v != 5 {
		t.Errorf("Cell(0,4) = (%d,%v), want (5,true)", v, ok)
	}
	if _, ok := s.Cell(0, 5); ok {
		t.Error("Cell(0,5) should be unset: no sixth token was given")
	}
}

func TestParseEmptyInputYieldsTrivialBoard(t *testing.T) {
	s, err := Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Dimension() != 1 {
		t.Errorf("Dimension() = %d, want 1", s.Dimension())
	}
}

func TestNextPerfectSquare(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 1},
		{1, 1},
		{2, 4},
		{4, 4},
		{5, 9},
		{9, 9},
		{10, 16},
		{16, 16},
		{81, 81},
	}
	for _, tt := range tests {
		if got := nextPerfectSquare(tt.n); got != tt.want {
			t.Errorf("nextPerfectSquare(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

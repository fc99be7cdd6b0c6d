package render

import (
	"strings"
	"testing"

	"github.com/jlessner/dlxsudoku/internal/puzzle"
)

func TestFprintProducesOneLinePerGridRowPlusBorders(t *testing.T) {
	s, err := puzzle.New(4)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	Fprint(&sb, s)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	// top border + 4 rows + 3 interior dividers + bottom border
	want := 1 + 4 + 3 + 1
	if len(lines) != want {
		t.Fatalf("got %d lines, want %d", len(lines), want)
	}
}

func TestFprintWidensCellsForMultiDigitDimension(t *testing.T) {
	s, err := puzzle.New(16)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	Fprint(&sb, s)

	lines := strings.Split(sb.String(), "\n")
	if len(lines) < 2 {
		t.Fatal("expected at least a border and a row")
	}
	// The top border's width must scale with the two-digit cell width.
	if len(lines[0]) < 16*4 {
		t.Errorf("border line too narrow for a 16x16 grid: %q", lines[0])
	}
}

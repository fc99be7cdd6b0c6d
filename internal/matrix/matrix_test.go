package matrix

import "testing"

func TestNewFillsAllCells(t *testing.T) {
	m := New(3, 4, -1)
	if m.Rows() != 3 || m.Cols() != 4 {
		t.Fatalf("got %dx%d, want 3x4", m.Rows(), m.Cols())
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			if m.At(r, c) != -1 {
				t.Errorf("At(%d,%d) = %d, want -1", r, c, m.At(r, c))
			}
		}
	}
}

func TestSetAt(t *testing.T) {
	m := New(2, 2, 0)
	m.Set(1, 1, 42)
	if got := m.At(1, 1); got != 42 {
		t.Errorf("At(1,1) = %d, want 42", got)
	}
	if got := m.At(0, 0); got != 0 {
		t.Errorf("At(0,0) = %d, want 0", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := New(2, 2, 0)
	m.Set(0, 0, 1)
	clone := m.Clone()
	clone.Set(0, 0, 2)
	if m.At(0, 0) != 1 {
		t.Errorf("original mutated by clone write: got %d, want 1", m.At(0, 0))
	}
	if clone.At(0, 0) != 2 {
		t.Errorf("clone.At(0,0) = %d, want 2", clone.At(0, 0))
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	m := New(2, 2, 0)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-bounds access")
		}
	}()
	m.At(2, 0)
}

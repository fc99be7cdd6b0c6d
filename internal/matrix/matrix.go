// Package matrix implements a fixed-shape dense 2-D container.
package matrix

import "github.com/jlessner/dlxsudoku/internal/puzzleerr"

// Matrix is a dense, fixed-shape grid of rows×cols elements of type T.
type Matrix[T any] struct {
	rows, cols int
	data       []T
}

// New returns a rows×cols Matrix with every element set to fill.
func New[T any](rows, cols int, fill T) *Matrix[T] {
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = fill
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

func (m *Matrix[T]) index(r, c int) int {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		puzzleerr.OutOfBounds("matrix index (%d,%d) out of bounds for %dx%d", r, c, m.rows, m.cols)
	}
	return c + r*m.cols
}

// At returns the element at (r, c).
func (m *Matrix[T]) At(r, c int) T {
	return m.data[m.index(r, c)]
}

// Set stores v at (r, c).
func (m *Matrix[T]) Set(r, c int, v T) {
	m.data[m.index(r, c)] = v
}

// Clone returns an independent copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	clone := &Matrix[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	copy(clone.data, m.data)
	return clone
}

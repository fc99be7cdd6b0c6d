package puzzle

// Cell holds the optional value of a single grid position.
type Cell struct {
	// Given marks a cell whose value was fixed by the input rather than
	// derived by the solver.
	Given bool

	value int
}

// IsSet reports whether the cell holds a value.
func (c *Cell) IsSet() bool {
	return c.value > 0
}

// Value returns the cell's value, or 0 if unset.
func (c *Cell) Value() int {
	return c.value
}

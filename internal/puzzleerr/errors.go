// Package puzzleerr defines the error taxonomy shared by the puzzle,
// cover, and dlx packages.
//
// Two kinds of failure exist. Sentinel errors below are ordinary,
// recoverable conditions a caller screens for with errors.Is: bad
// arguments, unreadable files, malformed puzzle text, a dimension that
// isn't a perfect square, or givens that conflict once pinned into the
// exact-cover matrix. OutOfBounds and Invariant panic instead — they
// mark a programmer error inside the solver itself, which by
// construction should never be reachable if the link-structure
// invariants hold.
package puzzleerr

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage indicates bad command-line arguments.
	ErrUsage = errors.New("usage error")
	// ErrIo indicates a file could not be opened or read.
	ErrIo = errors.New("i/o error")
	// ErrParse indicates the puzzle text did not match the grammar.
	ErrParse = errors.New("parse error")
	// ErrInvalidDimension indicates a dimension that is not a perfect square.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInconsistentGiven indicates a given forces re-covering an
	// already-covered exact-cover column.
	ErrInconsistentGiven = errors.New("inconsistent given")
	// ErrCancelled indicates a solve was interrupted via its context.
	ErrCancelled = errors.New("solve cancelled")
)

// OutOfBounds panics to report a bounds violation on a fixed-shape
// container. Out-of-range access is a programmer error, not a
// caller-recoverable condition.
func OutOfBounds(format string, a ...any) {
	panic(fmt.Errorf("out of bounds: "+format, a...))
}

// Invariant panics to report a violated data-structure invariant, such
// as a decoded solution that isn't actually complete and consistent.
func Invariant(format string, a ...any) {
	panic(fmt.Errorf("invariant violation: "+format, a...))
}

package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jlessner/dlxsudoku/internal/puzzleerr"
)

// Parse reads a whitespace-insensitive token sequence and returns a
// Sudoku with its dimension inferred from the input. A token is a run
// of ASCII decimal digits (a cell value; 0 denotes unknown), the
// character '.' (also unknown), or any other rune, which is treated as
// a separator and discarded. Tokens fill the grid in row-major order.
func Parse(text string) (*Sudoku, error) {
	entries, maxVal, err := tokenize(text)
	if err != nil {
		return nil, err
	}

	dimension := inferDimension(len(entries), maxVal)
	s, err := New(dimension)
	if err != nil {
		return nil, err
	}

	for i, v := range entries {
		if i >= dimension*dimension {
			break
		}
		if v == 0 {
			continue
		}
		r, c := i/dimension, i%dimension
		if err := s.GivenValue(r, c, v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// tokenize scans text into a row-major sequence of cell values (0 for
// unknown) and reports the largest value seen.
func tokenize(text string) (entries []int, maxVal int, err error) {
	var digits strings.Builder

	flush := func() error {
		if digits.Len() == 0 {
			return nil
		}
		v, convErr := strconv.Atoi(digits.String())
		if convErr != nil {
			return fmt.Errorf("%w: invalid token %q", puzzleerr.ErrParse, digits.String())
		}
		entries = append(entries, v)
		if v > maxVal {
			maxVal = v
		}
		digits.Reset()
		return nil
	}

	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '.':
			if err = flush(); err != nil {
				return nil, 0, err
			}
			entries = append(entries, 0)
		default:
			if err = flush(); err != nil {
				return nil, 0, err
			}
		}
	}
	if err = flush(); err != nil {
		return nil, 0, err
	}
	return entries, maxVal, nil
}

// inferDimension resolves spec's two candidate dimensions — the token
// count's ceiling square root, and the largest value seen — by taking
// their max and rounding that combined value up to the next perfect
// square, mirroring original_source's
// cmp::max(max_val, ceil(sqrt(num_entries))) followed by the
// perfect-square validation in Sudoku::new.
func inferDimension(numTokens, maxValue int) int {
	return nextPerfectSquare(max(ceilSqrt(numTokens), maxValue))
}

// ceilSqrt returns the smallest integer whose square is ≥ n.
func ceilSqrt(n int) int {
	if n <= 0 {
		return 0
	}
	b, err := integerSqrt(n)
	if err == nil {
		return b
	}
	root := 1
	for root*root < n {
		root++
	}
	return root
}

// nextPerfectSquare returns the smallest perfect square ≥ n, treating
// n ≤ 1 as 1 (the trivial 1×1 board).
func nextPerfectSquare(n int) int {
	if n <= 1 {
		return 1
	}
	b, err := integerSqrt(n)
	if err == nil {
		return b * b
	}
	// n isn't itself a perfect square: find the ceiling root by
	// walking up from 1.
	root := 1
	for root*root < n {
		root++
	}
	return root * root
}

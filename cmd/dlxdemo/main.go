// Command dlxdemo exercises the dancing-links search across several
// puzzle sizes and difficulty levels, printing a statistics report for
// each.
package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/jlessner/dlxsudoku/internal/cover"
	"github.com/jlessner/dlxsudoku/internal/dlx"
	"github.com/jlessner/dlxsudoku/internal/puzzle"
	"github.com/jlessner/dlxsudoku/internal/render"
)

type testCase struct {
	name string
	text string
}

// Neighboring digit cells are space-separated: the tokenizer merges
// adjacent digit characters into a single multi-digit token, so the
// traditional zero-separator compact notation isn't representable
// under this grammar without per-cell separators.
var testCases = []testCase{
	{
		name: "Easy 9x9",
		text: "5 3 0 0 7 0 0 0 0 6 0 0 1 9 5 0 0 0 0 9 8 0 0 0 0 6 0 8 0 0 0 6 0 0 0 3 4 0 0 8 0 3 0 0 1 7 0 0 0 2 0 0 0 6 0 6 0 0 0 0 2 8 0 0 0 0 4 1 9 0 0 5 0 0 0 0 8 0 0 7 9",
	},
	{
		name: "Hard 9x9",
		text: "0 0 0 0 0 0 0 1 0 4 0 0 0 0 0 0 0 0 0 2 0 0 0 0 0 0 0 0 0 0 0 5 0 4 0 7 0 0 8 0 0 0 3 0 0 0 0 1 0 9 0 0 0 0 3 0 0 4 0 0 2 0 0 0 5 0 1 0 0 0 0 0 0 0 0 8 0 6 0 0 0",
	},
	{
		name: "Minimal 4x4",
		text: "1...   ...2  .4..  ..3.",
	},
	{
		name: "Empty 4x4",
		text: "................",
	},
}

func main() {
	fmt.Println("Dancing Links Algorithm Demonstration")
	fmt.Println("=====================================")

	for i, tc := range testCases {
		fmt.Printf("\n%s %d: %s\n", color.HiBlueString("Test Case"), i+1, color.HiYellowString(tc.name))
		runCase(tc)
		fmt.Println(color.HiBlackString("─────────────────────────────────────"))
	}

	describeAlgorithm()
}

func runCase(tc testCase) {
	s, err := puzzle.Parse(tc.text)
	if err != nil {
		fmt.Println(color.HiRedString("parse error: %v", err))
		return
	}

	fmt.Println(color.HiBlueString("Original Puzzle:"))
	render.Print(s)

	if !s.IsConsistent() {
		fmt.Println(color.HiRedString("✗ Puzzle has repeated numbers in a row, column, or block."))
		return
	}

	arena := dlx.Build(cover.NumCols(s.Dimension()), cover.NumRows(s.Dimension()), cover.Build(s))
	if err := cover.PinGivens(arena, s); err != nil {
		fmt.Println(color.HiRedString("✗ %v", err))
		return
	}

	fmt.Println(color.HiGreenString("\nSolving with Dancing Links Algorithm..."))
	solutions, stats, err := arena.SolveWithStats(&dlx.Options{MaxSolutions: 1})
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		fmt.Println(color.HiRedString("✗ %v", err))
		return
	}

	if len(solutions) == 0 {
		fmt.Printf("%s (%v)\n", color.HiRedString("✗ Failed to solve"), stats.TimeElapsed)
		stats.PrintStats()
		return
	}

	fmt.Printf("%s (%v)\n", color.HiGreenString("✓ Solved successfully!"), stats.TimeElapsed)
	solved := cover.Decode(solutions[0], s)
	fmt.Println(color.HiBlueString("Solution:"))
	render.Print(solved)

	if solved.IsConsistent() && solved.IsCompleted() {
		fmt.Println(color.HiGreenString("✓ Solution verified as correct!"))
	} else {
		fmt.Println(color.HiRedString("✗ Solution verification failed!"))
	}

	stats.PrintStats()
}

func describeAlgorithm() {
	fmt.Printf("\n%s\n", color.HiCyanString("Dancing Links Algorithm Details"))
	fmt.Println(color.HiCyanString("================================"))

	fmt.Println("\nThe Dancing Links algorithm (also known as Algorithm X) solves exact")
	fmt.Println("cover problems. A dimension-D Sudoku is modeled with:")

	fmt.Printf("\n%s\n", color.HiYellowString("1. Constraint Matrix Structure:"))
	fmt.Println("   • 4*D^2 columns: one cell, row-value, column-value, and")
	fmt.Println("     block-value constraint group, each of size D^2")

	fmt.Printf("\n%s\n", color.HiYellowString("2. Matrix Rows:"))
	fmt.Println("   • D^3 rows, one per (row, col, value) candidate placement")
	fmt.Println("   • Each row has exactly 4 nodes, one per constraint type")
	fmt.Println("   • Rows for given cells are force-covered before search begins")

	fmt.Printf("\n%s\n", color.HiYellowString("3. Dancing Links Operations:"))
	fmt.Println("   • Cover: remove a column and every row intersecting it")
	fmt.Println("   • Uncover: restore a column and its rows, in reverse order")
	fmt.Println("   • Search: recursively select rows, covering and backtracking")

	fmt.Printf("\n%s\n", color.HiYellowString("4. Key Optimizations:"))
	fmt.Println("   • S-heuristic: always branch on the column with fewest candidates")
	fmt.Println("   • Doubly-linked circular lists give O(1) unlink/relink of each node")

	fmt.Printf("\n%s\n", color.HiGreenString("Example Matrix Structure:"))
	s, _ := puzzle.New(9)
	_ = s.GivenValue(0, 0, 5)
	arena := dlx.Build(cover.NumCols(9), cover.NumRows(9), cover.Build(s))
	info := arena.MatrixInfo()
	fmt.Println("For the constraint R0C0=5, the matrix row connects to:")
	fmt.Println("   • the cell (0,0) constraint column")
	fmt.Println("   • the row-0-value-5 constraint column")
	fmt.Println("   • the column-0-value-5 constraint column")
	fmt.Println("   • the block-0-value-5 constraint column")
	fmt.Printf("\nTotal columns: %s\n", color.HiGreenString("%d", info.Columns))
	fmt.Printf("Total rows: %s\n", color.HiGreenString("%d", info.Rows))
}

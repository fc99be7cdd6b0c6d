// Command sudoku solves a Sudoku puzzle of any square dimension using
// the dancing-links exact-cover search in internal/dlx.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/jlessner/dlxsudoku/internal/cover"
	"github.com/jlessner/dlxsudoku/internal/dlx"
	"github.com/jlessner/dlxsudoku/internal/puzzle"
	"github.com/jlessner/dlxsudoku/internal/puzzleerr"
	"github.com/jlessner/dlxsudoku/internal/render"
)

const usageStr = "Usage: sudoku filename|starting_configuration [--all]"

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, puzzleerr.ErrUsage) {
			fmt.Println(usageStr)
			if isStdoutTTY() {
				fmt.Println("Pass a file path or a literal puzzle string; add --all to enumerate every solution.")
			}
		} else {
			fmt.Println(color.HiRedString(err.Error()))
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	path, all, err := parseArgs(args)
	if err != nil {
		return err
	}

	text, err := readSudokuStr(path)
	if err != nil {
		return err
	}

	s, err := puzzle.Parse(text)
	if err != nil {
		return err
	}

	given := len(s.CompletedCells())
	fmt.Printf("%s\n", color.HiWhiteString("Initial Sudoku (%d/%d) is:", given, s.NumCells()))
	render.Print(s)

	if !s.IsConsistent() {
		fmt.Println("Sudoku contains repeated numbers in rows, columns or blocks.")
		return nil
	}

	limit := 1
	if all {
		limit = 0
	}

	arena := dlx.Build(cover.NumCols(s.Dimension()), cover.NumRows(s.Dimension()), cover.Build(s))
	if err := cover.PinGivens(arena, s); err != nil {
		if errors.Is(err, puzzleerr.ErrInconsistentGiven) {
			fmt.Println("This Sudoku is unsolvable!")
			return nil
		}
		return err
	}

	start := time.Now()
	solutions, _, err := arena.Solve(context.Background(), limit)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	if len(solutions) == 0 {
		fmt.Println("This Sudoku is unsolvable!")
		return nil
	}

	plural := ""
	if len(solutions) > 1 {
		plural = "s"
	}
	fmt.Printf("\nFound %d solution%s in %v:\n", len(solutions), plural, elapsed)
	for i, sol := range solutions {
		if len(solutions) > 1 {
			fmt.Printf("%d:\n", i+1)
		}
		render.Print(cover.Decode(sol, s))
	}
	return nil
}

// parseArgs separates the --all flag from the single positional
// file-or-literal argument.
func parseArgs(args []string) (path string, all bool, err error) {
	var positional []string
	for _, a := range args {
		if a == "--all" {
			all = true
			continue
		}
		positional = append(positional, a)
	}
	if len(positional) != 1 {
		return "", false, puzzleerr.ErrUsage
	}
	return positional[0], all, nil
}

// readSudokuStr treats arg as a filesystem path if it names an
// existing regular file, otherwise as the puzzle text itself.
func readSudokuStr(arg string) (string, error) {
	info, statErr := os.Stat(arg)
	if statErr != nil || !info.Mode().IsRegular() {
		return arg, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", puzzleerr.ErrIo, err)
	}
	return string(data), nil
}

func isStdoutTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

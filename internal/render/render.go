// Package render draws a Sudoku grid as a bordered, colorized terminal
// table, scaling cell width and block-boundary weight to the puzzle's
// dimension.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/jlessner/dlxsudoku/internal/puzzle"
)

var (
	givenColor    = color.New(color.Bold, color.FgHiYellow, color.BgHiBlack)
	solvedColor   = color.New(color.Bold, color.FgHiWhite)
	unsolvedColor = color.New(color.FgHiBlack)
)

// Print writes p to stdout using fatih/color, which auto-detects
// whether stdout is a terminal and strips escapes when it isn't.
func Print(p *puzzle.Sudoku) {
	Fprint(color.Output, p)
}

// Fprint writes p's grid to w: a top border, a row of cells per grid
// row, a divider between rows (heavier at block boundaries), and a
// bottom border. Each cell is as wide as the widest possible value
// plus two spaces of padding, so a 16×16 grid's two-digit values still
// line up.
func Fprint(w io.Writer, p *puzzle.Sudoku) {
	d, b := p.Dimension(), p.BlockSide()
	cellWidth := len(strconv.Itoa(d)) + 2

	fmt.Fprintln(w, border(d, b, cellWidth, topLeft, topMid, topMajor, topRight))
	for r := 0; r < d; r++ {
		if r != 0 {
			if r%b == 0 {
				fmt.Fprintln(w, border(d, b, cellWidth, majLeft, majMid, majCross, majRight))
			} else {
				fmt.Fprintln(w, border(d, b, cellWidth, minLeft, minMid, minCross, minRight))
			}
		}
		printRow(w, p, r, cellWidth, b)
	}
	fmt.Fprintln(w, border(d, b, cellWidth, botLeft, botMid, botMajor, botRight))
}

func printRow(w io.Writer, p *puzzle.Sudoku, r, cellWidth, b int) {
	d := p.Dimension()
	for c := 0; c < d; c++ {
		if c != 0 && c%b == 0 {
			fmt.Fprint(w, majorEdge)
		} else {
			fmt.Fprint(w, minorEdge)
		}
		fmt.Fprint(w, cellText(p, r, c, cellWidth))
	}
	fmt.Fprintln(w, minorEdge)
}

func cellText(p *puzzle.Sudoku, r, c, width int) string {
	v, ok := p.Cell(r, c)
	if !ok {
		return unsolvedColor.Sprint(center(".", width))
	}
	text := center(strconv.Itoa(v), width)
	if p.IsGiven(r, c) {
		return givenColor.Sprint(text)
	}
	return solvedColor.Sprint(text)
}

func center(s string, width int) string {
	pad := width - len(s)
	left := pad / 2
	right := pad - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

const minorEdge = "│"
const majorEdge = "║"

func border(d, b, cellWidth int, left, mid, major, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for c := 0; c < d; c++ {
		sb.WriteString(strings.Repeat("─", cellWidth))
		switch {
		case c == d-1:
			sb.WriteString(right)
		case (c+1)%b == 0:
			sb.WriteString(major)
		default:
			sb.WriteString(mid)
		}
	}
	return sb.String()
}

const (
	topLeft, topMid, topMajor, topRight = "┌", "┬", "╥", "┐"
	botLeft, botMid, botMajor, botRight = "└", "┴", "╨", "┘"
	minLeft, minMid, minCross, minRight = "├", "┼", "╫", "┤"
	majLeft, majMid, majCross, majRight = "╞", "╪", "╬", "╡"
)

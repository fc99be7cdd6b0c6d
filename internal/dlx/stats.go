package dlx

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
)

// Options configures SolveWithStats. The zero value runs with no time
// limit and returns every solution; a nil *Options means
// DefaultOptions.
type Options struct {
	MaxSolutions int // <= 0 means unbounded
	TimeLimit    time.Duration
}

// DefaultOptions mirrors the conservative defaults a demo or CLI tool
// should start from: one solution, ten-second ceiling.
func DefaultOptions() *Options {
	return &Options{MaxSolutions: 1, TimeLimit: 10 * time.Second}
}

// MatrixInfo describes the size and sparsity of the arena's matrix.
type MatrixInfo struct {
	Columns    int
	Rows       int
	TotalNodes int
	Density    float64 // percent of cells that are nonzero
}

// SolvedStats extends Stats with wall-clock timing and matrix sizing,
// for reporting after a SolveWithStats run.
type SolvedStats struct {
	Stats
	MatrixSize  MatrixInfo
	TimeElapsed time.Duration
}

// MatrixInfo reports the size and density of a's constraint matrix.
func (a *Arena) MatrixInfo() MatrixInfo {
	info := MatrixInfo{Columns: a.numCols, Rows: a.numRows}
	for _, first := range a.rowFirst {
		if first == nilNode {
			continue
		}
		count := 1
		for j := a.nodes[first].right; j != first; j = a.nodes[j].right {
			count++
		}
		info.TotalNodes += count
	}
	if info.Columns > 0 && info.Rows > 0 {
		info.Density = float64(info.TotalNodes) / float64(info.Columns*info.Rows) * 100.0
	}
	return info
}

// SolveWithStats is Solve with a time budget and size/timing
// instrumentation attached to the result, for tools that report on
// search behavior rather than only consuming its solutions.
func (a *Arena) SolveWithStats(options *Options) ([][]int, *SolvedStats, error) {
	if options == nil {
		options = DefaultOptions()
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if options.TimeLimit > 0 {
		ctx, cancel = context.WithTimeout(ctx, options.TimeLimit)
		defer cancel()
	}

	start := time.Now()
	solutions, stats, err := a.Solve(ctx, options.MaxSolutions)
	elapsed := time.Since(start)

	return solutions, &SolvedStats{
		Stats:       stats,
		MatrixSize:  a.MatrixInfo(),
		TimeElapsed: elapsed,
	}, err
}

// PrintStats displays solving statistics in the style of the rest of
// the toolchain's colorized terminal output.
func (stats *SolvedStats) PrintStats() {
	fmt.Printf("\n%s\n", color.HiCyanString("Dancing Links Statistics"))
	fmt.Printf("%s\n", color.HiCyanString("========================"))

	fmt.Printf("Matrix Info:\n")
	fmt.Printf("  Columns:     %s\n", color.HiYellowString("%d", stats.MatrixSize.Columns))
	fmt.Printf("  Rows:        %s\n", color.HiYellowString("%d", stats.MatrixSize.Rows))
	fmt.Printf("  Total Nodes: %s\n", color.HiYellowString("%d", stats.MatrixSize.TotalNodes))
	fmt.Printf("  Density:     %s\n", color.HiYellowString("%.2f%%", stats.MatrixSize.Density))

	fmt.Printf("\nSearch Statistics:\n")
	fmt.Printf("  Nodes Visited: %s\n", color.HiGreenString("%d", stats.NodesVisited))
	fmt.Printf("  Updates:       %s\n", color.HiGreenString("%d", stats.Updates))
	fmt.Printf("  Backtracks:    %s\n", color.HiRedString("%d", stats.Backtracks))
	fmt.Printf("  Time Elapsed:  %s\n", color.HiBlueString("%v", stats.TimeElapsed))

	if stats.TimeElapsed.Nanoseconds() > 0 {
		nodesPerSec := float64(stats.NodesVisited) / stats.TimeElapsed.Seconds()
		fmt.Printf("  Nodes/Second:  %s\n", color.HiMagentaString("%.0f", nodesPerSec))
	}
}

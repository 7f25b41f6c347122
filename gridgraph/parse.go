package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a digit grid from r, one row per line, and builds a GridGraph.
// See ParseLines for the accepted format.
func Parse(r io.Reader, opts GridOptions) (*GridGraph, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading grid: %w", err)
	}

	return ParseLines(lines, opts)
}

// ParseLines converts lines of decimal digits into a GridGraph.
// Each rune is one cell with cost 0–9. A trailing '\r' is dropped and blank
// lines before the first or after the last row are ignored; a blank line
// between rows makes the grid non-rectangular.
// Returns ErrInvalidCell (with 1-based line and column) for a non-digit rune,
// plus every error NewGridGraph can return.
func ParseLines(lines []string, opts GridOptions) (*GridGraph, error) {
	first, last := 0, len(lines)
	for first < last && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	for last > first && strings.TrimSpace(lines[last-1]) == "" {
		last--
	}
	if first == last {
		return nil, ErrEmptyGrid
	}

	values := make([][]int, 0, last-first)
	for i := first; i < last; i++ {
		line := strings.TrimSuffix(lines[i], "\r")
		row := make([]int, 0, len(line))
		col := 0
		for _, r := range line {
			col++
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrInvalidCell, r, i+1, col)
			}
			row = append(row, int(r-'0'))
		}
		values = append(values, row)
	}

	return NewGridGraph(values, opts)
}

// Package gridgraph provides utilities to treat a 2D matrix of traversal
// costs as a graph. It supports:
//
//   - Validated, deep-copied construction from [][]int or digit text
//   - Bounds-checked cost lookups
//   - Impassable “wall” cells above a configurable threshold
//   - Identification of connected regions of passable cells
package gridgraph

import "fmt"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// of non-negative costs. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNegativeCost for a cost < 0
// and ErrBadWallThreshold if opts.WallThreshold ≤ 0.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if opts.WallThreshold <= 0 {
		return nil, ErrBadWallThreshold
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrNegativeCost, x, y, v)
			}
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		WallThreshold:   opts.WallThreshold,
		neighborOffsets: [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
	}

	return gg, nil
}

// From2D is NewGridGraph with DefaultGridOptions.
func From2D(values [][]int) (*GridGraph, error) {
	return NewGridGraph(values, DefaultGridOptions())
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is inside the grid and below WallThreshold.
// Complexity: O(1).
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] < gg.WallThreshold
}

// Cost returns the cost of entering (x,y). ok is false when the cell is
// out of bounds or a wall.
// Complexity: O(1).
func (gg *GridGraph) Cost(x, y int) (cost int, ok bool) {
	if !gg.Passable(x, y) {
		return 0, false
	}

	return gg.CellValues[y][x], true
}

// NeighborOffsets returns a copy of the orthogonal offsets in N, E, S, W order.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return append([][2]int(nil), gg.neighborOffsets...)
}

// Corner returns the bottom-right cell, the customary destination.
func (gg *GridGraph) Corner() Cell {
	return Cell{X: gg.Width - 1, Y: gg.Height - 1}
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

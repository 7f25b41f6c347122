// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/crucible.
package gridgraph

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrMalformedGrid is wrapped by every error describing a badly shaped or badly valued grid.
	ErrMalformedGrid = errors.New("gridgraph: malformed grid")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = fmt.Errorf("%w: cell costs must be non-negative", ErrMalformedGrid)
	// ErrInvalidCell indicates a text cell that is not a decimal digit.
	ErrInvalidCell = fmt.Errorf("%w: cell is not a decimal digit", ErrMalformedGrid)
	// ErrBadWallThreshold indicates a WallThreshold of zero or below.
	ErrBadWallThreshold = errors.New("gridgraph: WallThreshold must be positive")
)

// Cell addresses a single grid position. X grows to the east, Y to the south.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// WallThreshold marks cells with cost ≥ WallThreshold as impassable.
	WallThreshold int
}

// DefaultGridOptions returns a GridOptions with default settings:
// WallThreshold=math.MaxInt (every cell is passable).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WallThreshold: math.MaxInt,
	}
}

// GridGraph treats a 2D cost matrix as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the cost of entering (x,y).
// neighborOffsets is precomputed for adjacency lookups (N, E, S, W).
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	WallThreshold   int
	neighborOffsets [][2]int
}

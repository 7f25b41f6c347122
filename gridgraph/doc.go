// Package gridgraph treats a rectangular matrix of non-negative traversal
// costs as an implicit 4-connected graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int of costs; it is immutable once built.
//   - Parse/ParseLines load the textual digit format ("2413432311323" per row).
//   - Cost/InBounds/Passable give O(1) bounds-checked cell lookups.
//   - ConnectedComponents groups passable cells into regions, so callers can
//     reject unreachable destinations before running a search.
//
// Why:
//
//   - Search engines borrow a GridGraph for the lifetime of a query and only
//     ever read it, so one grid can serve many concurrent queries.
//
// Complexity:
//
//   - NewGridGraph, Parse:  O(W×H) time and memory.
//   - Cost, InBounds:       O(1).
//   - ConnectedComponents:  O(W×H), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.WallThreshold: cells with cost ≥ threshold are impassable.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrMalformedGrid: parent of every shape/content error below.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell holds a negative cost.
//   - ErrInvalidCell: a text cell is not a decimal digit.
//   - ErrBadWallThreshold: WallThreshold ≤ 0.
package gridgraph

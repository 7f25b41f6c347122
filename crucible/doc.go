// Package crucible finds minimum-cost paths across a cost grid for a mover
// whose straight runs are bounded.
//
// Overview:
//
//   - A mover starts at an origin cell and must reach a destination cell.
//   - Entering a cell costs that cell's value (the origin itself is free).
//   - The mover never reverses. After entering a direction it must keep going
//     for at least MinRun steps before it may turn (or stop), and it may not
//     take more than MaxRun consecutive steps in one direction.
//
// Because plain Dijkstra over positions cannot express those rules, the
// search runs over an augmented state space: State{Pos, Dir, Run}. Two paths
// that reach the same cell from different headings or with different run
// lengths are different states and are tracked separately.
//
// Algorithm:
//
//   - Generalized Dijkstra with a container/heap min-heap keyed by
//     cumulative cost and lazy deletion of stale entries.
//   - The best-cost map and the frontier live only for one query, so any
//     number of queries may share one read-only *gridgraph.GridGraph.
//   - The state machine is Initialized → Running → {Solved | Exhausted | Aborted}.
//
// Complexity:
//
//   - States:  S = W·H·4·MaxRun (+1 origin state).
//   - Time:    O(S log S), each state expands at most 4 moves.
//   - Space:   O(S) for the best-cost map and the heap.
//
// Options:
//
//   - From(x, y) / To(x, y):     origin (default (0,0)) and destination (default bottom-right).
//   - WithRunBounds(min, max):   run-length discipline (default 1, 3).
//   - Crucible() / UltraCrucible(): presets (1, 3) and (4, 10).
//   - WithMaxCost(c):            never relax a state above cumulative cost c.
//   - WithMaxExpansions(n):      finalize at most n states, then stop with Aborted.
//   - WithReturnPath():          reconstruct the cell sequence of the optimal path.
//   - WithOnFinalize(fn):        observe each finalized state and its cost.
//   - WithLogger(l):             emit one debug record per finished query.
//
// Errors (sentinel):
//
//   - ErrNilGrid        if the grid is nil.
//   - ErrInvalidBounds  if MinRun < 0, MaxRun < 0 or MinRun > MaxRun.
//   - ErrOutOfBounds    if origin or destination is outside the grid or on a wall.
//   - ErrBadBudget      if MaxCost or MaxExpansions is negative.
//
// An unreachable destination is not an error: the Result has Status Exhausted.
//
// Example usage:
//
//	gg, _ := gridgraph.Parse(r, gridgraph.DefaultGridOptions())
//	res, err := crucible.Search(gg, crucible.UltraCrucible())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Reachable() {
//	    fmt.Println(res.Cost)
//	}
package crucible

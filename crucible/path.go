package crucible

import "github.com/katalvlaran/crucible/gridgraph"

// backtrack follows predecessor links from goal back to the origin state and
// returns the visited cells in travel order, origin first.
func (r *runner) backtrack(goal State) []gridgraph.Cell {
	var rev []gridgraph.Cell
	for s := goal; ; {
		rev = append(rev, s.Pos)
		if s.Dir == None {
			break
		}
		s = r.prev[s]
	}
	path := make([]gridgraph.Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}

	return path
}

// PathCost sums the entry costs of path on g, skipping the first cell.
// ok is false if the path leaves the grid, enters a wall or contains a
// non-adjacent step.
func PathCost(g *gridgraph.GridGraph, path []gridgraph.Cell) (cost int, ok bool) {
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if abs(a.X-b.X)+abs(a.Y-b.Y) != 1 {
			return 0, false
		}
		c, passable := g.Cost(b.X, b.Y)
		if !passable {
			return 0, false
		}
		cost += c
	}

	return cost, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

package crucible

import "github.com/katalvlaran/crucible/gridgraph"

// Successors enumerates the legal moves out of s under the run bounds
// [minRun, maxRun]:
//
//   - From the origin state (Dir == None) every heading is legal with Run 1,
//     provided maxRun ≥ 1.
//   - Reversing the current heading is never legal.
//   - Continuing straight is legal while s.Run < maxRun; Run grows by one.
//   - Turning is legal once s.Run ≥ minRun; Run restarts at 1.
//
// Each move must land on a passable cell; its cost is that cell's cost.
// g is only read. Moves are returned in Headings order.
func Successors(g *gridgraph.GridGraph, s State, minRun, maxRun int) []Move {
	return appendSuccessors(make([]Move, 0, len(Headings)), g, s, minRun, maxRun)
}

// appendSuccessors is Successors writing into dst, so the search loop can
// reuse one buffer across expansions.
func appendSuccessors(dst []Move, g *gridgraph.GridGraph, s State, minRun, maxRun int) []Move {
	if maxRun < 1 {
		return dst
	}
	var run int
	for _, d := range Headings {
		switch {
		case s.Dir == None:
			run = 1
		case d == s.Dir.Opposite():
			continue
		case d == s.Dir:
			if s.Run >= maxRun {
				continue
			}
			run = s.Run + 1
		default:
			if s.Run < minRun {
				continue
			}
			run = 1
		}

		dx, dy := d.Delta()
		next := gridgraph.Cell{X: s.Pos.X + dx, Y: s.Pos.Y + dy}
		cost, ok := g.Cost(next.X, next.Y)
		if !ok {
			continue
		}
		dst = append(dst, Move{
			To:   State{Pos: next, Dir: d, Run: run},
			Cost: cost,
		})
	}

	return dst
}

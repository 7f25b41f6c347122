package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells
// (cost < WallThreshold) under 4-connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// in ascending row‐major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	labels, count := gg.label()
	comps := make([][]int, count)
	for i, l := range labels {
		if l >= 0 {
			comps[l] = append(comps[l], i)
		}
	}

	return comps
}

// Connected reports whether a and b are passable cells of the same region.
// Complexity: O(W·H).
func (gg *GridGraph) Connected(a, b Cell) bool {
	if !gg.Passable(a.X, a.Y) || !gg.Passable(b.X, b.Y) {
		return false
	}
	labels, _ := gg.label()

	return labels[gg.index(a.X, a.Y)] == labels[gg.index(b.X, b.Y)]
}

// label assigns a component number to every passable cell (-1 for walls)
// and returns the labels with the number of components found.
func (gg *GridGraph) label() ([]int, int) {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	offsets := gg.neighborOffsets
	count := 0

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue // wall
			}
			i0 := gg.index(x, y)
			if labels[i0] >= 0 {
				continue
			}
			// BFS to flood the component
			queue := []int{i0}
			labels[i0] = count

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Passable(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if labels[vi] < 0 {
						labels[vi] = count
						queue = append(queue, vi)
					}
				}
			}
			count++
		}
	}

	return labels, count
}

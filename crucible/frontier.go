package crucible

// frontierItem is one pending state and the cumulative cost it was pushed with.
type frontierItem struct {
	cost  int
	state State
}

// frontier is a min-heap of frontierItem ordered by cost ascending, driven
// through container/heap. Relaxation pushes a fresh item instead of
// decreasing a key; superseded items are skipped when popped.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq frontier) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type frontierItem.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

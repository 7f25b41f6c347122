package crucible

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Search runs one query on g and returns its terminal Result.
// It is SearchContext with context.Background().
func Search(g *gridgraph.GridGraph, opts ...Option) (Result, error) {
	return SearchContext(context.Background(), g, opts...)
}

// SearchContext runs one query on g. The context is checked once per
// extraction from the frontier; on cancellation the Result has Status
// Aborted and the context error is returned.
//
// Preconditions and validation (in order, before any search work):
//  1. g must be non-nil (ErrNilGrid).
//  2. 0 ≤ MinRun ≤ MaxRun (ErrInvalidBounds).
//  3. MaxCost and MaxExpansions must be ≥ 0 (ErrBadBudget).
//  4. Origin and Destination must be passable cells of g (ErrOutOfBounds).
//
// Outcomes:
//
//   - Solved:    Cost is the minimal cumulative cost, the destination was
//     reached with Run ≥ MinRun.
//   - Exhausted: no legal path exists (not an error).
//   - Aborted:   MaxExpansions reached or ctx cancelled.
//
// g is only read, so concurrent queries on the same grid are safe.
func SearchContext(ctx context.Context, g *gridgraph.GridGraph, opts ...Option) (Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if cfg.MinRun < 0 || cfg.MaxRun < 0 || cfg.MinRun > cfg.MaxRun {
		return Result{}, fmt.Errorf("%w: min=%d max=%d", ErrInvalidBounds, cfg.MinRun, cfg.MaxRun)
	}
	if cfg.MaxCost < 0 || cfg.MaxExpansions < 0 {
		return Result{}, fmt.Errorf("%w: max cost=%d max expansions=%d", ErrBadBudget, cfg.MaxCost, cfg.MaxExpansions)
	}
	if !cfg.destinationSet {
		cfg.Destination = g.Corner()
	}
	if !g.Passable(cfg.Origin.X, cfg.Origin.Y) {
		return Result{}, fmt.Errorf("%w: origin %v", ErrOutOfBounds, cfg.Origin)
	}
	if !g.Passable(cfg.Destination.X, cfg.Destination.Y) {
		return Result{}, fmt.Errorf("%w: destination %v", ErrOutOfBounds, cfg.Destination)
	}

	// 3) Run
	r := newRunner(g, cfg)
	var res Result
	var err error
	if g.Connected(cfg.Origin, cfg.Destination) {
		r.init()
		res, err = r.process(ctx)
	} else {
		res = Result{Status: Exhausted}
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("crucible: search finished",
			slog.String("status", res.Status.String()),
			slog.Int("cost", res.Cost),
			slog.Int("expanded", res.Expanded),
			slog.Int("min_run", cfg.MinRun),
			slog.Int("max_run", cfg.MaxRun),
			slog.String("origin", cfg.Origin.String()),
			slog.String("destination", cfg.Destination.String()),
		)
	}

	return res, err
}

// runner holds the mutable state for a single query.
type runner struct {
	g        *gridgraph.GridGraph // The input grid; read-only.
	options  Options              // Validated configuration.
	status   Status               // Current phase of the state machine.
	best     map[State]int        // Lowest cumulative cost confirmed per state.
	prev     map[State]State      // Predecessor per state; nil unless ReturnPath.
	pq       frontier             // Min-heap of pending states.
	moves    []Move               // Reused successor buffer.
	expanded int                  // Number of finalized states.
}

func newRunner(g *gridgraph.GridGraph, cfg Options) *runner {
	hint := g.Width * g.Height * 4
	r := &runner{
		g:       g,
		options: cfg,
		best:    make(map[State]int, hint),
		pq:      make(frontier, 0, hint),
		moves:   make([]Move, 0, len(Headings)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State, hint)
	}

	return r
}

// init seeds the frontier with the origin state at cost 0.
//
// The origin has no heading yet; its successors cover all four directions,
// so a single seed serves every MinRun.
func (r *runner) init() {
	origin := State{Pos: r.options.Origin, Dir: None}
	r.best[origin] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierItem{cost: 0, state: origin})
	r.status = Initialized
}

// process is the main loop: extract the cheapest state, skip it if stale,
// finalize it, test the goal and relax its successors.
func (r *runner) process(ctx context.Context) (Result, error) {
	r.status = Running
	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return r.finish(Aborted, 0, State{}), err
		}

		item := heap.Pop(&r.pq).(frontierItem)
		if item.cost > r.best[item.state] {
			continue // superseded by a cheaper push
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return r.finish(Aborted, 0, State{}), nil
		}

		r.expanded++
		if r.options.OnFinalize != nil {
			r.options.OnFinalize(item.state, item.cost)
		}

		if r.isGoal(item.state) {
			return r.finish(Solved, item.cost, item.state), nil
		}
		r.relax(item)
	}

	return r.finish(Exhausted, 0, State{}), nil
}

// isGoal reports whether s may end the path: it sits on the destination
// with its minimum run completed. The origin state may stop immediately
// only when MinRun ≤ 1, since turning there would be legal as well.
func (r *runner) isGoal(s State) bool {
	if s.Pos != r.options.Destination {
		return false
	}
	if s.Dir == None {
		return r.options.MinRun <= 1
	}

	return s.Run >= r.options.MinRun
}

// relax pushes every successor of item whose tentative cost strictly
// improves on the best known cost of that state.
func (r *runner) relax(item frontierItem) {
	r.moves = appendSuccessors(r.moves[:0], r.g, item.state, r.options.MinRun, r.options.MaxRun)
	for _, m := range r.moves {
		// item.cost ≤ MaxCost, so the subtraction cannot wrap.
		if m.Cost > r.options.MaxCost-item.cost {
			continue
		}
		next := item.cost + m.Cost
		if old, seen := r.best[m.To]; seen && next >= old {
			continue
		}
		r.best[m.To] = next
		if r.prev != nil {
			r.prev[m.To] = item.state
		}
		heap.Push(&r.pq, frontierItem{cost: next, state: m.To})
	}
}

// finish moves the runner into a terminal status and builds the Result.
func (r *runner) finish(status Status, cost int, goal State) Result {
	r.status = status
	res := Result{Status: status, Expanded: r.expanded}
	if status != Solved {
		return res
	}
	res.Cost = cost
	if r.prev != nil {
		res.Path = r.backtrack(goal)
	}

	return res
}

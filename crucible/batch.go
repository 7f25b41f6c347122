package crucible

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Query describes one independent search on a shared grid.
type Query struct {
	Origin      gridgraph.Cell
	Destination gridgraph.Cell
	MinRun      int
	MaxRun      int
}

// options converts q into the options that override the shared ones.
func (q Query) options() []Option {
	return []Option{
		From(q.Origin.X, q.Origin.Y),
		To(q.Destination.X, q.Destination.Y),
		WithRunBounds(q.MinRun, q.MaxRun),
	}
}

// SearchAll runs queries concurrently against g, at most limit at a time
// (limit ≤ 0 means no limit). opts apply to every query before the
// query's own endpoints and bounds; an OnFinalize hook passed here is called
// from several goroutines.
//
// Results are returned in query order. The first failing query cancels the
// others and its error is returned, prefixed with the query index.
func SearchAll(ctx context.Context, g *gridgraph.GridGraph, queries []Query, limit int, opts ...Option) ([]Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	results := make([]Result, len(queries))
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, q := range queries {
		qopts := make([]Option, 0, len(opts)+3)
		qopts = append(qopts, opts...)
		qopts = append(qopts, q.options()...)
		eg.Go(func() error {
			res, err := SearchContext(egCtx, g, qopts...)
			if err != nil {
				return fmt.Errorf("crucible: query %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

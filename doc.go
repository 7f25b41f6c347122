// Package crucible is the root of a small toolkit for pricing routes across
// cost grids when the mover's straight runs are bounded.
//
// What is inside?
//
//	gridgraph/       immutable cost grids: validation, digit-text loader, walls, regions
//	crucible/        run-length constrained Dijkstra over (cell, heading, run) states
//	internal/cli/    the crucible command: config, flags, reporting
//	cmd/crucible/    the binary
//
// Quick example:
//
//	2413
//	3215     crucible --preset both grid.txt
//	3255     basic: ...
//	         ultra: ...
//
// The search packages are pure Go with no global state: every query owns its
// frontier and best-cost map, so one grid can serve many goroutines.
//
//	go get github.com/katalvlaran/crucible
package crucible

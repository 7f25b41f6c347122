package crucible_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridgraph"
)

// lavaLines is the 13×13 reference map.
var lavaLines = []string{
	"2413432311323",
	"3215453535623",
	"3255245654254",
	"3446585845452",
	"4546657867536",
	"1438598798454",
	"4457876987766",
	"3637877979653",
	"4654967986887",
	"4564679986453",
	"1224686865563",
	"2546548887735",
	"4322674655533",
}

// ribbonLines punishes the long way round for the strict discipline.
var ribbonLines = []string{
	"111111111111",
	"999999999991",
	"999999999991",
	"999999999991",
	"999999999991",
}

// mustParse builds a grid from digit lines or fails the test.
func mustParse(t testing.TB, lines []string) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.ParseLines(lines, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	return gg
}

// mustGrid builds a grid from values with the given wall threshold or fails the test.
func mustGrid(t testing.TB, values [][]int, wall int) *gridgraph.GridGraph {
	t.Helper()
	opts := gridgraph.DefaultGridOptions()
	if wall > 0 {
		opts.WallThreshold = wall
	}
	gg, err := gridgraph.NewGridGraph(values, opts)
	require.NoError(t, err)

	return gg
}

package crucible_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
)

// SearchSuite exercises Search on the reference maps and on edge cases.
type SearchSuite struct {
	suite.Suite
	lava *gridgraph.GridGraph
}

func (s *SearchSuite) SetupTest() {
	s.lava = mustParse(s.T(), lavaLines)
}

// TestBasicDiscipline: turn any time, at most 3 straight.
func (s *SearchSuite) TestBasicDiscipline() {
	res, err := crucible.Search(s.lava, crucible.WithRunBounds(1, 3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), crucible.Solved, res.Status)
	require.True(s.T(), res.Reachable())
	require.Equal(s.T(), 102, res.Cost)
	require.Nil(s.T(), res.Path, "path is only built on request")
}

// TestUltraDiscipline: at least 4, at most 10 straight.
func (s *SearchSuite) TestUltraDiscipline() {
	res, err := crucible.Search(s.lava, crucible.UltraCrucible())
	require.NoError(s.T(), err)
	require.Equal(s.T(), crucible.Solved, res.Status)
	require.Equal(s.T(), 94, res.Cost)
}

// TestUltraRibbon forces the strict mover to finish its last run at the corner.
func (s *SearchSuite) TestUltraRibbon() {
	res, err := crucible.Search(mustParse(s.T(), ribbonLines), crucible.UltraCrucible())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 71, res.Cost)
}

// TestDefaultsAreBasic checks that no options means (0,0) → corner with (1,3).
func (s *SearchSuite) TestDefaultsAreBasic() {
	res, err := crucible.Search(s.lava)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 102, res.Cost)

	explicit, err := crucible.Search(s.lava, crucible.From(0, 0), crucible.To(12, 12), crucible.Crucible())
	require.NoError(s.T(), err)
	require.Equal(s.T(), res, explicit)
}

// TestSingleCell covers origin == destination under several minimum runs.
func (s *SearchSuite) TestSingleCell() {
	g := mustGrid(s.T(), [][]int{{5}}, 0)

	res, err := crucible.Search(g, crucible.WithRunBounds(2, 3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), crucible.Exhausted, res.Status, "a minimum run of 2 cannot be completed without moves")
	require.False(s.T(), res.Reachable())

	res, err = crucible.Search(g, crucible.WithRunBounds(1, 3), crucible.WithReturnPath())
	require.NoError(s.T(), err)
	require.Equal(s.T(), crucible.Solved, res.Status)
	require.Equal(s.T(), 0, res.Cost)
	require.Equal(s.T(), []gridgraph.Cell{{X: 0, Y: 0}}, res.Path)

	res, err = crucible.Search(g, crucible.WithRunBounds(0, 0))
	require.NoError(s.T(), err)
	require.Equal(s.T(), crucible.Solved, res.Status)
}

// TestCorridor: a width-1 strip admits only straight moves.
func (s *SearchSuite) TestCorridor() {
	row := mustGrid(s.T(), [][]int{{1, 1, 1, 1, 1}}, 0)
	col := mustGrid(s.T(), [][]int{{1}, {1}, {1}, {1}, {1}}, 0)

	for _, g := range []*gridgraph.GridGraph{row, col} {
		res, err := crucible.Search(g, crucible.WithRunBounds(1, 4))
		require.NoError(s.T(), err)
		require.Equal(s.T(), 4, res.Cost, "cost equals the Manhattan distance")

		end := gridgraph.Cell{X: (g.Width - 1) / 4, Y: (g.Height - 1) / 4}
		res, err = crucible.Search(g, crucible.WithRunBounds(1, 1), crucible.To(end.X, end.Y))
		require.NoError(s.T(), err)
		require.Equal(s.T(), 1, res.Cost)

		res, err = crucible.Search(g, crucible.WithRunBounds(1, 1))
		require.NoError(s.T(), err)
		require.Equal(s.T(), crucible.Exhausted, res.Status, "one straight step is all a (1,1) mover gets without turning")
	}
}

// TestWallsDetour routes around impassable cells.
//
//	1 1 1
//	9 9 1
//	1 1 1
func (s *SearchSuite) TestWallsDetour() {
	g := mustGrid(s.T(), [][]int{
		{1, 1, 1},
		{9, 9, 1},
		{1, 1, 1},
	}, 9)
	res, err := crucible.Search(g, crucible.To(0, 2), crucible.WithReturnPath())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, res.Cost)
	require.Equal(s.T(), []gridgraph.Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2},
	}, res.Path)
}

// TestWallsSeparate ends without search when no region joins the endpoints.
func (s *SearchSuite) TestWallsSeparate() {
	g := mustGrid(s.T(), [][]int{
		{1, 9},
		{9, 1},
	}, 9)
	res, err := crucible.Search(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), crucible.Exhausted, res.Status)
	require.Zero(s.T(), res.Expanded)
}

// TestValidation ensures bad input is rejected before any search work.
func (s *SearchSuite) TestValidation() {
	cases := []struct {
		name string
		g    *gridgraph.GridGraph
		opts []crucible.Option
		err  error
	}{
		{"NilGrid", nil, nil, crucible.ErrNilGrid},
		{"NegativeMin", s.lava, []crucible.Option{crucible.WithRunBounds(-1, 3)}, crucible.ErrInvalidBounds},
		{"NegativeMax", s.lava, []crucible.Option{crucible.WithRunBounds(0, -1)}, crucible.ErrInvalidBounds},
		{"MinAboveMax", s.lava, []crucible.Option{crucible.WithRunBounds(4, 3)}, crucible.ErrInvalidBounds},
		{"NegativeMaxCost", s.lava, []crucible.Option{crucible.WithMaxCost(-1)}, crucible.ErrBadBudget},
		{"NegativeExpansions", s.lava, []crucible.Option{crucible.WithMaxExpansions(-1)}, crucible.ErrBadBudget},
		{"OriginOutside", s.lava, []crucible.Option{crucible.From(-1, 0)}, crucible.ErrOutOfBounds},
		{"DestinationOutside", s.lava, []crucible.Option{crucible.To(13, 0)}, crucible.ErrOutOfBounds},
		{"OriginOnWall", mustGrid(s.T(), [][]int{{9, 1}}, 9), nil, crucible.ErrOutOfBounds},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			called := false
			opts := append([]crucible.Option{crucible.WithOnFinalize(func(crucible.State, int) { called = true })}, tc.opts...)
			res, err := crucible.Search(tc.g, opts...)
			require.ErrorIs(s.T(), err, tc.err)
			require.Equal(s.T(), crucible.Result{}, res)
			require.False(s.T(), called, "no state may be finalized on invalid input")
		})
	}
}

// TestMaxCost prunes everything above the cap.
func (s *SearchSuite) TestMaxCost() {
	res, err := crucible.Search(s.lava, crucible.WithMaxCost(101))
	require.NoError(s.T(), err)
	require.Equal(s.T(), crucible.Exhausted, res.Status)

	res, err = crucible.Search(s.lava, crucible.WithMaxCost(102))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 102, res.Cost)
}

// TestCostNearIntLimit keeps sums that would pass math.MaxInt out of the search.
func (s *SearchSuite) TestCostNearIntLimit() {
	big := math.MaxInt/2 + 1
	g := mustGrid(s.T(), [][]int{{0, big, big}}, math.MaxInt)

	res, err := crucible.Search(g, crucible.WithRunBounds(1, 3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), crucible.Exhausted, res.Status)

	res, err = crucible.Search(g, crucible.To(1, 0))
	require.NoError(s.T(), err)
	require.Equal(s.T(), crucible.Solved, res.Status)
	require.Equal(s.T(), big, res.Cost)

	res, err = crucible.Search(g, crucible.To(1, 0), crucible.WithMaxCost(big-1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), crucible.Exhausted, res.Status)
}

// TestMaxExpansions stops with Aborted once the budget is spent.
func (s *SearchSuite) TestMaxExpansions() {
	res, err := crucible.Search(s.lava, crucible.WithMaxExpansions(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), crucible.Aborted, res.Status)
	require.Equal(s.T(), 1, res.Expanded)
	require.False(s.T(), res.Reachable())

	full, err := crucible.Search(s.lava)
	require.NoError(s.T(), err)
	res, err = crucible.Search(s.lava, crucible.WithMaxExpansions(full.Expanded))
	require.NoError(s.T(), err)
	require.Equal(s.T(), full, res, "a budget equal to the work needed changes nothing")
}

// TestCancelledContext aborts before the first extraction.
func (s *SearchSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := crucible.SearchContext(ctx, s.lava)
	require.ErrorIs(s.T(), err, context.Canceled)
	require.Equal(s.T(), crucible.Aborted, res.Status)
	require.Zero(s.T(), res.Expanded)
}

// TestFinalizedStatesRespectBounds checks the run-bound invariant on every
// finalized state and that costs are finalized in non-decreasing order.
func (s *SearchSuite) TestFinalizedStatesRespectBounds() {
	for _, b := range [][2]int{{1, 3}, {4, 10}, {0, 2}} {
		seen := make(map[crucible.State]bool)
		last := 0
		hook := func(st crucible.State, cost int) {
			require.False(s.T(), seen[st], "state %+v finalized twice", st)
			seen[st] = true
			require.GreaterOrEqual(s.T(), cost, last)
			last = cost
			require.GreaterOrEqual(s.T(), st.Run, 0)
			require.LessOrEqual(s.T(), st.Run, b[1])
			require.Equal(s.T(), st.Dir == crucible.None, st.Run == 0)
		}
		_, err := crucible.Search(s.lava, crucible.WithRunBounds(b[0], b[1]), crucible.WithOnFinalize(hook))
		require.NoError(s.T(), err)
		require.NotEmpty(s.T(), seen)
	}
}

// TestPathObeysDiscipline reconstructs optimal paths and replays them.
func (s *SearchSuite) TestPathObeysDiscipline() {
	for _, b := range [][2]int{{1, 3}, {4, 10}} {
		res, err := crucible.Search(s.lava, crucible.WithRunBounds(b[0], b[1]), crucible.WithReturnPath())
		require.NoError(s.T(), err)
		require.Equal(s.T(), gridgraph.Cell{X: 0, Y: 0}, res.Path[0])
		require.Equal(s.T(), s.lava.Corner(), res.Path[len(res.Path)-1])

		cost, ok := crucible.PathCost(s.lava, res.Path)
		require.True(s.T(), ok)
		require.Equal(s.T(), res.Cost, cost)

		runs := runLengths(s.T(), res.Path)
		for i, r := range runs {
			require.LessOrEqual(s.T(), r, b[1], "run %d of %v", i, runs)
			require.GreaterOrEqual(s.T(), r, b[0], "run %d of %v", i, runs)
		}
	}
}

// TestDeterminism runs identical queries twice.
func (s *SearchSuite) TestDeterminism() {
	a, err := crucible.Search(s.lava, crucible.UltraCrucible(), crucible.WithReturnPath())
	require.NoError(s.T(), err)
	b, err := crucible.Search(s.lava, crucible.UltraCrucible(), crucible.WithReturnPath())
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, b)
}

// TestLogger emits one debug record per finished query.
func (s *SearchSuite) TestLogger() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := crucible.Search(s.lava, crucible.WithLogger(logger))
	require.NoError(s.T(), err)
	out := buf.String()
	require.Contains(s.T(), out, "crucible: search finished")
	require.Contains(s.T(), out, "status=solved")
	require.Contains(s.T(), out, "cost=102")
	require.Contains(s.T(), out, "destination=(12,12)")
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// runLengths splits a path into straight segments and returns their lengths,
// failing on reversals and non-adjacent steps.
func runLengths(t testing.TB, path []gridgraph.Cell) []int {
	t.Helper()
	var runs []int
	var pdx, pdy int
	for i := 1; i < len(path); i++ {
		dx, dy := path[i].X-path[i-1].X, path[i].Y-path[i-1].Y
		require.Equal(t, 1, abs(dx)+abs(dy), "step %d is not a unit move", i)
		switch {
		case i > 1 && dx == -pdx && dy == -pdy:
			t.Fatalf("step %d reverses", i)
		case i > 1 && dx == pdx && dy == pdy:
			runs[len(runs)-1]++
		default:
			runs = append(runs, 1)
		}
		pdx, pdy = dx, dy
	}

	return runs
}

package paint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/paint"
	"github.com/katalvlaran/gridsearch/search"
)

func newGrid(t *testing.T, rows ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromStrings(rows)
	require.NoError(t, err)
	return g
}

// TestWallBrushSkipsMarkers checks the wall brush never covers Start or Goal.
func TestWallBrushSkipsMarkers(t *testing.T) {
	g := newGrid(t, "S.G")
	p := paint.New(g, nil)

	changed, err := p.Apply(gridgraph.Coord{X: 0})
	require.NoError(t, err)
	require.False(t, changed)

	changed, err = p.Apply(gridgraph.Coord{X: 1})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "S#G\n", g.String())

	p.SetMode(paint.OpenMode)
	changed, _ = p.Apply(gridgraph.Coord{X: 2})
	require.False(t, changed)
	changed, _ = p.Apply(gridgraph.Coord{X: 1})
	require.True(t, changed)
	require.Equal(t, "S.G\n", g.String())
}

// TestMoveMarkers checks Start and Goal moves keep exactly one of each.
func TestMoveMarkers(t *testing.T) {
	g := newGrid(t, "S..G")
	p := paint.New(g, nil)

	p.SetMode(paint.StartMode)
	changed, err := p.Apply(gridgraph.Coord{X: 2})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "..SG\n", g.String())
	require.NoError(t, g.Validate())

	// The goal cannot be overwritten by the start brush.
	changed, _ = p.Apply(gridgraph.Coord{X: 3})
	require.False(t, changed)

	p.SetMode(paint.GoalMode)
	changed, _ = p.Apply(gridgraph.Coord{X: 0})
	require.True(t, changed)
	require.Equal(t, "G.S.\n", g.String())
	require.NoError(t, g.Validate())
}

// TestPlaceMarkersOnBlankGrid places both markers on a fresh grid.
func TestPlaceMarkersOnBlankGrid(t *testing.T) {
	g, _ := gridgraph.New(3, 1)
	p := paint.New(g, nil)
	p.SetMode(paint.StartMode)
	_, _ = p.Apply(gridgraph.Coord{X: 0})
	p.SetMode(paint.GoalMode)
	_, _ = p.Apply(gridgraph.Coord{X: 2})
	require.NoError(t, g.Validate())
}

// TestDragOnlyWallsAndOpen checks marker brushes do not drag.
func TestDragOnlyWallsAndOpen(t *testing.T) {
	g := newGrid(t, "S..G")
	p := paint.New(g, nil)
	p.SetMode(paint.StartMode)
	changed, err := p.Drag(gridgraph.Coord{X: 1})
	require.NoError(t, err)
	require.False(t, changed)

	p.SetMode(paint.WallMode)
	changed, _ = p.Drag(gridgraph.Coord{X: 1})
	require.True(t, changed)
}

// TestPaintInvalidatesRun checks painting mid-run discards the engine's run.
func TestPaintInvalidatesRun(t *testing.T) {
	g := newGrid(t,
		"S...",
		"....",
		"...G",
	)
	eng, err := search.NewEngine(g)
	require.NoError(t, err)
	r, err := eng.StartRun(search.BFS)
	require.NoError(t, err)
	_, err = eng.Step(r)
	require.NoError(t, err)

	p := paint.New(g, eng.Invalidate)
	_, err = p.Apply(gridgraph.Coord{X: 2, Y: 2})
	require.NoError(t, err)

	require.True(t, r.Discarded())
	_, err = eng.Step(r)
	require.ErrorIs(t, err, search.ErrStaleRun)

	require.Equal(t, 2, p.ResetExploration())
	require.Zero(t, g.Count(gridgraph.Explored))
}

// TestApplyOutOfBounds reports the grid error.
func TestApplyOutOfBounds(t *testing.T) {
	g := newGrid(t, "SG")
	p := paint.New(g, nil)
	_, err := p.Apply(gridgraph.Coord{X: 5})
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

// TestClear keeps markers and opens everything else.
func TestClear(t *testing.T) {
	g := newGrid(t, "S#*G")
	paint.New(g, nil).Clear()
	require.Equal(t, "S..G\n", g.String())
}

// TestCellAt checks pixel mapping and clamping.
func TestCellAt(t *testing.T) {
	cases := []struct {
		px, py int
		want   gridgraph.Coord
	}{
		{0, 0, gridgraph.Coord{X: 0, Y: 0}},
		{27, 14, gridgraph.Coord{X: 1, Y: 1}},
		{-3, 5, gridgraph.Coord{X: 0, Y: 0}},
		{10_000, 699, gridgraph.Coord{X: 49, Y: 49}},
	}
	for _, tc := range cases {
		got := paint.CellAt(tc.px, tc.py, 14, 14, 50, 50)
		require.Equal(t, tc.want, got, "CellAt(%d,%d)", tc.px, tc.py)
	}
}

// TestParseMode round-trips every brush name.
func TestParseMode(t *testing.T) {
	for _, m := range []paint.Mode{paint.WallMode, paint.OpenMode, paint.StartMode, paint.GoalMode} {
		back, err := paint.ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, back)
	}
	_, err := paint.ParseMode("lava")
	require.ErrorIs(t, err, paint.ErrUnknownMode)
}

package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// mustGrid builds a grid from text rows or fails the test.
func mustGrid(t *testing.T, rows ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromStrings(rows)
	require.NoError(t, err)
	return g
}

// expandedOrder returns the vertex under expansion for each step.
func expandedOrder(steps []search.StepResult) []gridgraph.Coord {
	out := make([]gridgraph.Coord, 0, len(steps))
	for _, s := range steps {
		if s.HasExpanded {
			out = append(out, s.Expanded)
		}
	}
	return out
}

// allExplored concatenates the Explored lists of every step.
func allExplored(steps []search.StepResult) []gridgraph.Coord {
	var out []gridgraph.Coord
	for _, s := range steps {
		out = append(out, s.Explored...)
	}
	return out
}

//----------------------------------------------------------------------------//
// Configuration errors
//----------------------------------------------------------------------------//

// TestNewRun_Errors verifies that configuration problems surface before any step.
func TestNewRun_Errors(t *testing.T) {
	if _, err := search.NewRun(nil, search.BFS); !errors.Is(err, search.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}

	noStart := mustGrid(t, "..G")
	_, err := search.NewRun(noStart, search.BFS)
	require.ErrorIs(t, err, search.ErrConfiguration)
	require.ErrorIs(t, err, gridgraph.ErrNoStart)

	noGoal := mustGrid(t, "S..")
	_, err = search.NewRun(noGoal, search.DFS)
	require.ErrorIs(t, err, gridgraph.ErrNoGoal)

	dup := mustGrid(t, "S.G")
	require.NoError(t, dup.Set(gridgraph.Coord{X: 1}, gridgraph.Goal))
	_, err = search.NewRun(dup, search.BestFirst)
	require.ErrorIs(t, err, gridgraph.ErrDuplicateGoal)

	ok := mustGrid(t, "S.G")
	_, err = search.NewRun(ok, search.Algorithm(42))
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

//----------------------------------------------------------------------------//
// Concrete scenarios
//----------------------------------------------------------------------------//

// TestBFS_ThreeByThree follows FIFO expansion on an empty 3×3 grid from
// (0,0) to (2,2). The goal is found while expanding (2,1).
func TestBFS_ThreeByThree(t *testing.T) {
	g := mustGrid(t,
		"S..",
		"...",
		"..G",
	)
	r, err := search.NewRun(g, search.BFS)
	require.NoError(t, err)

	steps := search.Walk(r)
	want := []gridgraph.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}, {X: 2, Y: 1}}
	require.Equal(t, want, expandedOrder(steps))
	require.Equal(t, search.ReachedGoal, r.Status())
	require.Equal(t, 7, r.Steps())

	require.Equal(t, []gridgraph.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}}, steps[0].Explored)
	require.Equal(t, []gridgraph.Coord{{X: 2, Y: 0}, {X: 1, Y: 1}}, steps[1].Explored)
	require.Equal(t, 7, g.Count(gridgraph.Explored))

	goal, ok := g.Goal()
	require.True(t, ok)
	require.Equal(t, gridgraph.Coord{X: 2, Y: 2}, goal)
}

// TestDFS_ThreeByThree follows LIFO expansion on the same grid.
func TestDFS_ThreeByThree(t *testing.T) {
	g := mustGrid(t,
		"S..",
		"...",
		"..G",
	)
	r, err := search.NewRun(g, search.DFS)
	require.NoError(t, err)

	steps := search.Walk(r)
	want := []gridgraph.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}}
	require.Equal(t, want, expandedOrder(steps))
	require.Equal(t, search.ReachedGoal, r.Status())
	require.Equal(t, 5, r.Explored())
}

// TestBestFirst_ThreeByThree follows heuristic expansion; (1,0) and (0,1)
// tie at score 5 and pop in insertion order.
func TestBestFirst_ThreeByThree(t *testing.T) {
	g := mustGrid(t,
		"S..",
		"...",
		"..G",
	)
	r, err := search.NewRun(g, search.BestFirst)
	require.NoError(t, err)

	steps := search.Walk(r)
	want := []gridgraph.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	require.Equal(t, want, expandedOrder(steps))
	require.Equal(t, search.ReachedGoal, r.Status())
	require.Equal(t, 6, r.Explored())
}

// TestStartAdjacentToGoal reaches the goal on the first step with nothing explored.
func TestStartAdjacentToGoal(t *testing.T) {
	for _, alg := range search.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g := mustGrid(t, "GS#")
			r, err := search.NewRun(g, alg)
			require.NoError(t, err)

			res := r.Step()
			require.Equal(t, search.ReachedGoal, res.Status)
			require.Empty(t, res.Explored)
			require.Equal(t, 1, res.Step)
			require.Zero(t, g.Count(gridgraph.Explored))
		})
	}
}

// TestStartWalledIn exhausts on the first step with nothing explored.
func TestStartWalledIn(t *testing.T) {
	for _, alg := range search.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g := mustGrid(t,
				"#S#",
				"###",
				"..G",
			)
			r, err := search.NewRun(g, alg)
			require.NoError(t, err)

			res := r.Step()
			require.Equal(t, search.Exhausted, res.Status)
			require.Empty(t, res.Explored)
			require.Zero(t, g.Count(gridgraph.Explored))
		})
	}
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestOpenGrid_ReachesGoal checks every variant reaches the goal on a
// wall-free grid within as many steps as there are Open cells.
func TestOpenGrid_ReachesGoal(t *testing.T) {
	for _, alg := range search.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g, _ := gridgraph.New(10, 10)
			require.NoError(t, g.Set(gridgraph.Coord{X: 0, Y: 0}, gridgraph.Start))
			require.NoError(t, g.Set(gridgraph.Coord{X: 9, Y: 9}, gridgraph.Goal))
			open := g.Count(gridgraph.Open)

			r, err := search.NewRun(g, alg)
			require.NoError(t, err)
			search.Walk(r)

			require.Equal(t, search.ReachedGoal, r.Status())
			require.LessOrEqual(t, r.Steps(), open)
		})
	}
}

// TestEnclosedGoal_Exhausts checks every variant exhausts the reachable
// region, never touches the walled-off goal, and explores each cell once.
//
//	S . . .
//	. . # #
//	. . # G
func TestEnclosedGoal_Exhausts(t *testing.T) {
	for _, alg := range search.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g := mustGrid(t,
				"S...",
				"..##",
				"..#G",
			)
			start, _ := g.Start()
			reachable := g.ReachableOpen(start)

			r, err := search.NewRun(g, alg)
			require.NoError(t, err)
			steps := search.Walk(r)

			require.Equal(t, search.Exhausted, r.Status())
			require.Equal(t, reachable, r.Explored())
			require.Equal(t, reachable, g.Count(gridgraph.Explored))
			require.Equal(t, reachable+1, r.Visited())

			s, _ := g.Get(gridgraph.Coord{X: 3, Y: 2})
			require.Equal(t, gridgraph.Goal, s)
			require.Equal(t, 3, g.Count(gridgraph.Wall))

			seen := make(map[gridgraph.Coord]bool)
			for _, c := range allExplored(steps) {
				require.False(t, seen[c], "explored twice: %v", c)
				seen[c] = true
			}
		})
	}
}

// TestDeterminism checks two runs on identical grids produce identical steps.
func TestDeterminism(t *testing.T) {
	rows := []string{
		"S....#....",
		".##..#.##.",
		"..#....#..",
		"#.####.#..",
		"........#G",
	}
	for _, alg := range search.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			var runs [2][]search.StepResult
			for i := range runs {
				g := mustGrid(t, rows...)
				r, err := search.NewRun(g, alg)
				require.NoError(t, err)
				runs[i] = search.Walk(r)
			}
			require.Equal(t, runs[0], runs[1])
		})
	}
}

// TestResetIdempotence checks that resetting exploration restores the
// grid to its unpainted state and a re-run explores the same cells.
func TestResetIdempotence(t *testing.T) {
	rows := []string{
		"S..#....",
		".#.#.##.",
		".#...#..",
		".####.#G",
	}
	for _, alg := range search.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g := mustGrid(t, rows...)
			pristine := g.String()

			first, err := search.NewRun(g, alg)
			require.NoError(t, err)
			firstSteps := search.Walk(first)

			g.ResetExploration()
			require.Equal(t, pristine, g.String())

			second, err := search.NewRun(g, alg)
			require.NoError(t, err)
			require.Equal(t, firstSteps, search.Walk(second))
		})
	}
}

// TestTerminalStepIsNoop checks no further state changes after a terminal status.
func TestTerminalStepIsNoop(t *testing.T) {
	g := mustGrid(t, "S.G")
	r, err := search.NewRun(g, search.BFS)
	require.NoError(t, err)
	search.Walk(r)
	require.Equal(t, search.ReachedGoal, r.Status())

	before := g.String()
	steps := r.Steps()
	res := r.Step()
	require.Equal(t, search.ReachedGoal, res.Status)
	require.False(t, res.HasExpanded)
	require.Empty(t, res.Explored)
	require.Equal(t, steps, r.Steps())
	require.Equal(t, before, g.String())
}

// TestHooks checks OnExpand and OnExplore fire in step order.
func TestHooks(t *testing.T) {
	g := mustGrid(t, "S..G")
	var expanded, explored []gridgraph.Coord
	r, err := search.NewRun(g, search.BFS,
		search.WithOnExpand(func(c gridgraph.Coord) { expanded = append(expanded, c) }),
		search.WithOnExplore(func(c gridgraph.Coord) { explored = append(explored, c) }),
	)
	require.NoError(t, err)
	steps := search.Walk(r)

	require.Equal(t, expandedOrder(steps), expanded)
	require.Equal(t, []gridgraph.Coord{{X: 1, Y: 0}, {X: 2, Y: 0}}, explored)
}

// TestWithHeuristic checks a custom heuristic is consulted against the
// goal at push time.
func TestWithHeuristic(t *testing.T) {
	g := mustGrid(t,
		"...",
		".S.",
		"..G",
	)
	var goals []gridgraph.Coord
	h := func(goal gridgraph.Coord) frontier.Scorer {
		goals = append(goals, goal)
		return frontier.Manhattan(goal)
	}
	r, err := search.NewRun(g, search.BestFirst, search.WithHeuristic(h))
	require.NoError(t, err)

	res := r.Step()
	require.Equal(t, search.Running, res.Status)
	// Start is pushed with a score too, then all four neighbors.
	require.Len(t, goals, 5)
	for _, goal := range goals {
		require.Equal(t, gridgraph.Coord{X: 2, Y: 2}, goal)
	}
	// (2,1) and (1,2) tie at distance 1; (2,1) was pushed first.
	next := r.Step()
	require.Equal(t, gridgraph.Coord{X: 2, Y: 1}, next.Expanded)
	require.Equal(t, search.ReachedGoal, next.Status)
}

//----------------------------------------------------------------------------//
// Names
//----------------------------------------------------------------------------//

// TestParseAlgorithm covers accepted aliases and rejection.
func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"bfs": search.BFS, "Breadth-First": search.BFS,
		"dfs": search.DFS, " depth ": search.DFS,
		"best-first": search.BestFirst, "greedy": search.BestFirst,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := search.ParseAlgorithm("dijkstra")
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	for _, alg := range search.Algorithms {
		back, err := search.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		require.Equal(t, alg, back)
	}
}

// TestStatus covers names and terminality.
func TestStatus(t *testing.T) {
	require.False(t, search.Running.Terminal())
	require.True(t, search.ReachedGoal.Terminal())
	require.True(t, search.Exhausted.Terminal())
	require.Equal(t, "reached goal", search.ReachedGoal.String())
	require.Equal(t, "Status(9)", search.Status(9).String())
}

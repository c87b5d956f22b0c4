// Package search implements a stepwise search over a gridgraph.Grid with
// three interchangeable frontier disciplines.
//
// What
//
//   - BFS (FIFO queue), DFS (LIFO stack) and BestFirst (priority queue
//     ordered by squared Euclidean distance to the goal, stable on ties)
//     share one expansion routine and differ only in the frontier.
//   - A Run exposes exactly one expansion per Step, so a driver can
//     observe the grid after each step. Step reports the status
//     (Running, ReachedGoal, Exhausted) and the coordinates marked
//     Explored during that step.
//   - An Engine holds at most one active Run. StartRun discards the prior
//     run first; stepping a discarded handle returns ErrStaleRun.
//
// Step protocol
//
//  1. Empty frontier: Exhausted, terminal.
//  2. Pop the vertex under expansion.
//  3. For each neighbor in left, right, up, down order: skip if visited;
//     if Open, mark visited, push and set Explored; if Goal, report
//     ReachedGoal and stop. Anything else is ignored.
//  4. Running if the frontier is non-empty, else Exhausted.
//
// The Goal is never pushed or marked visited, and only Open cells are
// ever overwritten (with Explored). The visited set is keyed by the
// row-major cell index, so a freshly built Coord for an already seen
// cell is recognized.
//
// Determinism
//
//	Neighbor order is fixed and the priority frontier breaks ties by
//	insertion order. There is no randomness and no timing: the same grid
//	and algorithm always produce the same step sequence, whatever cadence
//	the driver uses.
//
// Complexity (N = Width×Height)
//
//   - Step:   O(1) for BFS/DFS, O(log N) for BestFirst.
//   - Run:    at most one expansion per reachable cell; O(N) memory.
//
// Errors
//
//   - ErrGridNil           nil grid.
//   - ErrUnknownAlgorithm  algorithm outside BFS, DFS, BestFirst.
//   - ErrConfiguration     missing or duplicate Start/Goal, wrapping the
//     gridgraph error; reported by NewRun/StartRun before any step.
//   - ErrStaleRun          Engine.Step with a run that is not active.
//
// Usage
//
//	eng, _ := search.NewEngine(g, search.WithLogger(log))
//	run, err := eng.StartRun(search.BFS)
//	if err != nil {
//		// configuration error
//	}
//	for !run.Status().Terminal() {
//		res, _ := eng.Step(run)
//		render(res.Explored)
//	}
package search

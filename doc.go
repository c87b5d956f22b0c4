// Package gridsearch is a step-by-step playground for graph search on a
// painted 2-D grid.
//
// What is gridsearch?
//
//	A small library plus two commands that bring together:
//		• Grid model: walls, open cells, one start, one goal, explored marks
//		• Frontiers: FIFO queue, LIFO stack, heuristic priority queue
//		• Search engine: BFS, DFS and greedy best-first, one expansion per Step
//		• Painter: brush modes, marker moves, pixel→cell clamping
//		• Renderer: ASCII and RGBA output
//		• Driver: tight or ticker-paced stepping with context cancellation
//
// Why step-by-step?
//
//   - Every Step reports the vertex expanded and the cells explored, in order
//   - The caller owns the cadence; results never depend on timing
//   - Painting the grid invalidates the running search, so a stale run can
//     never mutate a grid it no longer describes
//
// Packages:
//
//	gridgraph/     Grid, CellState, Coord, neighbor order, text map parsing
//	frontier/      Queue, Stack, Priority and the distance heuristics
//	search/        Run, Engine, step protocol, Walk
//	paint/         Painter and CellAt
//	render/        Palette, ASCII, FillRGBA (GridPainter under the ebiten tag)
//	driver/        Loop
//	config/        flags, GRIDSEARCH_* environment, .env loading
//	internal/app/  viewer controller and the ebiten Game
//	cmd/gridsearch  headless runner
//	cmd/gridviz     interactive viewer (go build -tags ebiten)
//
// Quick ASCII example, breadth-first from S to G:
//
//	S**      S start, G goal
//	*#*      # wall, * explored
//	**G
//
//	go run ./cmd/gridsearch -algorithm bfs -map maze.txt
package gridsearch

package frontier

import "github.com/katalvlaran/gridsearch/gridgraph"

// Heuristic builds a Scorer bound to a goal coordinate.
type Heuristic func(goal gridgraph.Coord) Scorer

// SquaredEuclidean scores c by (goal.x−x)² + (goal.y−y)².
// It is the default best-first heuristic.
func SquaredEuclidean(goal gridgraph.Coord) Scorer {
	return func(c gridgraph.Coord) int {
		dx, dy := goal.X-c.X, goal.Y-c.Y
		return dx*dx + dy*dy
	}
}

// Manhattan scores c by |goal.x−x| + |goal.y−y|.
func Manhattan(goal gridgraph.Coord) Scorer {
	return func(c gridgraph.Coord) int {
		return abs(goal.X-c.X) + abs(goal.Y-c.Y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

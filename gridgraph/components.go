package gridgraph

// ReachableOpen counts the Open or Explored cells orthogonally reachable
// from c without crossing Wall, Start or Goal cells. c itself is not
// counted. Search runs never explore more cells than this from Start.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and the queue.
func (g *Grid) ReachableOpen(c Coord) int {
	if !g.InBounds(c) {
		return 0
	}
	seen := make([]bool, len(g.cells))
	i0 := g.Index(c)
	seen[i0] = true
	queue := []int{i0}
	count := 0

	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, d := range neighborOffsets {
			v := Coord{X: u.X + d[0], Y: u.Y + d[1]}
			if !g.InBounds(v) {
				continue
			}
			vi := g.Index(v)
			if seen[vi] {
				continue
			}
			if s := g.cells[vi]; s != Open && s != Explored {
				continue
			}
			seen[vi] = true
			count++
			queue = append(queue, vi)
		}
	}
	return count
}

// Enclosed reports whether c has no orthogonal neighbor that is Open,
// Explored or Goal.
func (g *Grid) Enclosed(c Coord) bool {
	for _, n := range g.Neighbors(c) {
		if n.State == Open || n.State == Explored || n.State == Goal {
			return false
		}
	}
	return true
}

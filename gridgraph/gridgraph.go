package gridgraph

import (
	"fmt"
)

// New constructs a width×height Grid with every cell Open and neither
// Start nor Goal placed.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]CellState, width*height)
	for i := range cells {
		cells[i] = Open
	}

	return &Grid{width: width, height: height, cells: cells, start: -1, goal: -1}, nil
}

// From2D constructs a Grid from a non-empty, rectangular slice of rows,
// where values[y][x] is the state of cell (x,y). The input is deep-copied.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell, or
// ErrDuplicateStart/ErrDuplicateGoal if more than one marker is present.
// Complexity: O(W×H).
func From2D(values [][]CellState) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{width: w, height: h, cells: make([]CellState, w*h), start: -1, goal: -1}
	for y, row := range values {
		for x, s := range row {
			if !s.Valid() {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownCell, s, x, y)
			}
			i := g.index(x, y)
			switch s {
			case Start:
				if g.start >= 0 {
					return nil, fmt.Errorf("%w: (%d,%d)", ErrDuplicateStart, x, y)
				}
				g.start = i
			case Goal:
				if g.goal >= 0 {
					return nil, fmt.Errorf("%w: (%d,%d)", ErrDuplicateGoal, x, y)
				}
				g.goal = i
			}
			g.cells[i] = s
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index maps c to its row-major index y*Width + x.
// The result is only meaningful for in-bounds coordinates.
func (g *Grid) Index(c Coord) int {
	return g.index(c.X, c.Y)
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}

// Get returns the state of c, or ErrOutOfBounds.
func (g *Grid) Get(c Coord) (CellState, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
	}
	return g.cells[g.Index(c)], nil
}

// Set writes s into c. Writing Start or Goal records c as the current
// Start or Goal; overwriting the recorded Start or Goal cell with another
// state forgets it. No other invariant is enforced here.
func (g *Grid) Set(c Coord, s CellState) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
	}
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCell, s)
	}
	i := g.Index(c)
	if i == g.start && s != Start {
		g.start = -1
	}
	if i == g.goal && s != Goal {
		g.goal = -1
	}
	switch s {
	case Start:
		g.start = i
	case Goal:
		g.goal = i
	}
	g.cells[i] = s

	return nil
}

// Neighbors returns the up-to-4 orthogonal in-bounds neighbors of c in
// the fixed order left, right, up, down, each paired with its current
// state. An out-of-bounds c has no neighbors.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Neighbor {
	if !g.InBounds(c) {
		return nil
	}
	out := make([]Neighbor, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if !g.InBounds(n) {
			continue
		}
		out = append(out, Neighbor{Coord: n, State: g.cells[g.Index(n)]})
	}

	return out
}

// Start returns the current Start coordinate, if one is placed.
func (g *Grid) Start() (Coord, bool) {
	if g.start < 0 {
		return Coord{}, false
	}
	return g.Coordinate(g.start), true
}

// Goal returns the current Goal coordinate, if one is placed.
func (g *Grid) Goal() (Coord, bool) {
	if g.goal < 0 {
		return Coord{}, false
	}
	return g.Coordinate(g.goal), true
}

// Validate checks that exactly one Start and exactly one Goal cell exist.
// Returns ErrNoStart, ErrNoGoal, ErrDuplicateStart or ErrDuplicateGoal.
// Complexity: O(W×H).
func (g *Grid) Validate() error {
	starts, goals := g.Count(Start), g.Count(Goal)
	switch {
	case starts == 0:
		return ErrNoStart
	case starts > 1:
		return fmt.Errorf("%w: found %d", ErrDuplicateStart, starts)
	case goals == 0:
		return ErrNoGoal
	case goals > 1:
		return fmt.Errorf("%w: found %d", ErrDuplicateGoal, goals)
	}
	// The recorded index can be lost when a duplicate marker is
	// overwritten; resync it from the single remaining cell.
	if g.start < 0 || g.cells[g.start] != Start {
		g.start = g.find(Start)
	}
	if g.goal < 0 || g.cells[g.goal] != Goal {
		g.goal = g.find(Goal)
	}

	return nil
}

// find returns the index of the first cell holding s, or -1.
func (g *Grid) find(s CellState) int {
	for i, c := range g.cells {
		if c == s {
			return i
		}
	}
	return -1
}

// Count returns how many cells currently hold s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// ResetExploration sets every Explored cell back to Open and returns the
// number of cells reset.
func (g *Grid) ResetExploration() int {
	n := 0
	for i, c := range g.cells {
		if c == Explored {
			g.cells[i] = Open
			n++
		}
	}
	return n
}

// Cells returns a row-major copy of all cell states.
func (g *Grid) Cells() []CellState {
	out := make([]CellState, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = g.Cells()
	return &c
}

// Package gridgraph defines core types and constants for the grid model
// shared by the search engine, painter and renderer.
package gridgraph

import "fmt"

// Default grid dimensions used by the paint program.
const (
	DefaultWidth  = 50
	DefaultHeight = 50
)

// CellState is the state of a single grid cell.
// The numeric values match the original paint program encoding.
type CellState uint8

const (
	// Wall cells are impassable.
	Wall CellState = iota
	// Open cells may be explored.
	Open
	// Start is the single cell a search is seeded from.
	Start
	// Goal is the single cell a search is looking for.
	Goal
	// Explored marks an Open cell the engine has pushed onto its frontier.
	Explored
)

// stateRunes maps each CellState to its one-rune text form.
var stateRunes = [...]rune{
	Wall:     '#',
	Open:     '.',
	Start:    'S',
	Goal:     'G',
	Explored: '*',
}

// String returns a human-readable state name.
func (s CellState) String() string {
	switch s {
	case Wall:
		return "Wall"
	case Open:
		return "Open"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	case Explored:
		return "Explored"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Rune returns the one-rune text form used by Parse and Grid.String.
func (s CellState) Rune() rune {
	if int(s) < len(stateRunes) {
		return stateRunes[s]
	}
	return '?'
}

// Valid reports whether s is one of the five known states.
func (s CellState) Valid() bool {
	return s <= Explored
}

// StateFromRune is the inverse of CellState.Rune.
func StateFromRune(r rune) (CellState, bool) {
	for s, sr := range stateRunes {
		if sr == r {
			return CellState(s), true
		}
	}
	return 0, false
}

// Coord is a grid coordinate. Two Coords are equal when X and Y are equal.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Neighbor pairs an adjacent coordinate with its state at lookup time.
type Neighbor struct {
	Coord Coord
	State CellState
}

// neighborOffsets lists orthogonal offsets in the fixed order
// left, right, up, down. Exploration order depends on it.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a fixed-size rectangular array of cell states plus the
// coordinates of the current Start and Goal cells.
// Cells are stored row-major: index = y*width + x.
//
// A Grid is not safe for concurrent mutation. It is owned by the host
// application; a search run only borrows it.
type Grid struct {
	width, height int
	cells         []CellState
	start, goal   int // row-major index, or -1 when not placed
}

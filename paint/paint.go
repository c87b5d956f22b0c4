// Package paint implements the editing side of the grid: brush modes,
// start and goal moves, drag painting and mapping pointer positions to
// cells. It is the external collaborator that keeps the one-Start,
// one-Goal invariant the grid itself does not enforce.
package paint

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// ErrUnknownMode is returned by ParseMode for an unrecognized brush name.
var ErrUnknownMode = errors.New("paint: unknown brush mode")

// Mode selects what a click paints.
type Mode int

const (
	// WallMode paints walls.
	WallMode Mode = iota
	// OpenMode erases to Open.
	OpenMode
	// StartMode moves the Start marker.
	StartMode
	// GoalMode moves the Goal marker.
	GoalMode
)

// String returns the brush name.
func (m Mode) String() string {
	switch m {
	case WallMode:
		return "wall"
	case OpenMode:
		return "open"
	case StartMode:
		return "start"
	case GoalMode:
		return "goal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a brush name to a Mode.
func ParseMode(name string) (Mode, error) {
	for _, m := range []Mode{WallMode, OpenMode, StartMode, GoalMode} {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Painter applies brush strokes to a grid. Every stroke that changes the
// grid first calls the invalidate callback, so a search run in progress
// is discarded rather than left disagreeing with the cells.
type Painter struct {
	grid       *gridgraph.Grid
	mode       Mode
	invalidate func()
}

// New returns a Painter with the wall brush selected. invalidate may be
// nil; otherwise pass the engine's Invalidate.
func New(g *gridgraph.Grid, invalidate func()) *Painter {
	if invalidate == nil {
		invalidate = func() {}
	}
	return &Painter{grid: g, mode: WallMode, invalidate: invalidate}
}

// Mode returns the selected brush.
func (p *Painter) Mode() Mode { return p.mode }

// SetMode selects a brush.
func (p *Painter) SetMode(m Mode) { p.mode = m }

// Apply paints c with the selected brush, as on a click:
//   - Wall and Open brushes never overwrite Start or Goal.
//   - Start and Goal brushes move the marker; its old cell becomes Open.
//
// It reports whether the grid changed.
func (p *Painter) Apply(c gridgraph.Coord) (bool, error) {
	cur, err := p.grid.Get(c)
	if err != nil {
		return false, err
	}
	switch p.mode {
	case WallMode:
		return p.paintCell(c, cur, gridgraph.Wall)
	case OpenMode:
		return p.paintCell(c, cur, gridgraph.Open)
	case StartMode:
		return p.moveMarker(c, gridgraph.Start, gridgraph.Goal, p.grid.Start)
	case GoalMode:
		return p.moveMarker(c, gridgraph.Goal, gridgraph.Start, p.grid.Goal)
	}
	return false, fmt.Errorf("%w: %v", ErrUnknownMode, p.mode)
}

// Drag paints c while the pointer is held down. Only the Wall and Open
// brushes drag, and only over Wall, Open or Explored cells.
func (p *Painter) Drag(c gridgraph.Coord) (bool, error) {
	if p.mode != WallMode && p.mode != OpenMode {
		return false, nil
	}
	return p.Apply(c)
}

func (p *Painter) paintCell(c gridgraph.Coord, cur, to gridgraph.CellState) (bool, error) {
	if cur == gridgraph.Start || cur == gridgraph.Goal || cur == to {
		return false, nil
	}
	p.invalidate()
	return true, p.grid.Set(c, to)
}

// moveMarker places marker at c, reopening its previous cell. The other
// marker is never overwritten.
func (p *Painter) moveMarker(c gridgraph.Coord, marker, other gridgraph.CellState, where func() (gridgraph.Coord, bool)) (bool, error) {
	cur, _ := p.grid.Get(c)
	if cur == other {
		return false, nil
	}
	old, placed := where()
	if placed && old == c {
		return false, nil
	}
	p.invalidate()
	if placed {
		if err := p.grid.Set(old, gridgraph.Open); err != nil {
			return false, err
		}
	}
	return true, p.grid.Set(c, marker)
}

// ResetExploration sets every Explored cell back to Open after
// invalidating any run, and returns the number of cells reset.
func (p *Painter) ResetExploration() int {
	p.invalidate()
	return p.grid.ResetExploration()
}

// Clear invalidates any run and sets every cell except Start and Goal to Open.
func (p *Painter) Clear() {
	p.invalidate()
	for i, s := range p.grid.Cells() {
		if s != gridgraph.Start && s != gridgraph.Goal {
			_ = p.grid.Set(p.grid.Coordinate(i), gridgraph.Open)
		}
	}
}

// CellAt maps a pointer position in pixels to a grid cell of cellW×cellH
// pixels, clamping to [0,width)×[0,height). Clamping happens here, in the
// input layer, and never inside the grid.
func CellAt(px, py, cellW, cellH, width, height int) gridgraph.Coord {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return gridgraph.Coord{X: clamp(floorDiv(px, cellW), width), Y: clamp(floorDiv(py, cellH), height)}
}

// floorDiv rounds toward negative infinity so positions left of or above
// the canvas map below zero before clamping.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func clamp(v, n int) int {
	switch {
	case v < 0:
		return 0
	case v >= n:
		return n - 1
	}
	return v
}

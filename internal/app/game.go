//go:build ebiten

package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridsearch/config"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/paint"
	"github.com/katalvlaran/gridsearch/render"
	"github.com/katalvlaran/gridsearch/search"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl      *Controller
	painter  *render.GridPainter
	cellSize int
	showHelp bool
}

// New constructs a Game for g using the viewer settings in cfg.
func New(g *gridgraph.Grid, cfg *config.Config, log logrus.FieldLogger) (*Game, error) {
	alg, err := cfg.SearchAlgorithm()
	if err != nil {
		return nil, err
	}
	ctl, err := NewController(g, alg, log)
	if err != nil {
		return nil, err
	}
	return &Game{
		ctl:      ctl,
		painter:  render.NewGridPainter(g.Width(), g.Height(), nil),
		cellSize: cfg.CellSize,
		showHelp: true,
	}, nil
}

var brushKeys = map[ebiten.Key]paint.Mode{
	ebiten.KeyDigit1: paint.WallMode,
	ebiten.KeyDigit2: paint.OpenMode,
	ebiten.KeyDigit3: paint.StartMode,
	ebiten.KeyDigit4: paint.GoalMode,
}

var algorithmKeys = map[ebiten.Key]search.Algorithm{
	ebiten.KeyB: search.BFS,
	ebiten.KeyD: search.DFS,
	ebiten.KeyH: search.BestFirst,
}

// Update handles input and advances the active run.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for k, m := range brushKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.ctl.SelectBrush(m)
		}
	}
	for k, alg := range algorithmKeys {
		if inpututil.IsKeyJustPressed(k) {
			_ = g.ctl.Start(alg)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		_ = g.ctl.Start(g.ctl.Algorithm())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.ResetExploration()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.ctl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) {
		g.showHelp = !g.showHelp
	}

	grid := g.ctl.Grid()
	mx, my := ebiten.CursorPosition()
	at := paint.CellAt(mx, my, g.cellSize, g.cellSize, grid.Width(), grid.Height())
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.ctl.Press(at)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.ctl.Drag(at)
	}

	g.ctl.Tick()
	return nil
}

// Draw renders the grid and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctl.Grid(), g.cellSize)

	last := g.ctl.Last()
	status := "idle"
	if last.Step > 0 {
		status = last.Status.String()
	}
	line := fmt.Sprintf("%s  brush=%s  step=%d  %s", g.ctl.Algorithm(), g.ctl.Brush(), last.Step, status)
	if g.ctl.Paused() {
		line += "  [paused]"
	}
	if g.showHelp {
		line += "\n1-4 brush  B/D/H search  enter restart  space pause  N step  C reset  X clear  ? help"
	}
	ebitenutil.DebugPrint(screen, line)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.ctl.Grid()
	return grid.Width() * g.cellSize, grid.Height() * g.cellSize
}

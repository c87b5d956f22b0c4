// Package app wires the grid, engine, painter and a step cadence into the
// interactive viewer. Controller holds everything that does not depend on
// a window, so it runs and tests without the ebiten build tag.
package app

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/paint"
	"github.com/katalvlaran/gridsearch/search"
)

// Controller owns the viewer's state: one grid, its engine, a painter
// that invalidates the engine's run, and the pause/single-step flags.
type Controller struct {
	grid    *gridgraph.Grid
	engine  *search.Engine
	painter *paint.Painter
	log     logrus.FieldLogger

	alg      search.Algorithm
	run      *search.Run
	paused   bool
	tickOnce bool
	last     search.StepResult
}

// NewController binds a controller to g.
func NewController(g *gridgraph.Grid, alg search.Algorithm, log logrus.FieldLogger) (*Controller, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	eng, err := search.NewEngine(g, search.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return &Controller{
		grid:    g,
		engine:  eng,
		painter: paint.New(g, eng.Invalidate),
		log:     log,
		alg:     alg,
	}, nil
}

// Grid returns the grid being shown.
func (c *Controller) Grid() *gridgraph.Grid { return c.grid }

// Algorithm returns the algorithm the next Start will use.
func (c *Controller) Algorithm() search.Algorithm { return c.alg }

// Brush returns the selected paint brush.
func (c *Controller) Brush() paint.Mode { return c.painter.Mode() }

// SelectBrush changes the paint brush.
func (c *Controller) SelectBrush(m paint.Mode) { c.painter.SetMode(m) }

// Paused reports whether automatic stepping is paused.
func (c *Controller) Paused() bool { return c.paused }

// Last returns the most recent step result.
func (c *Controller) Last() search.StepResult { return c.last }

// Running reports whether a run is active and not yet terminal.
func (c *Controller) Running() bool {
	return c.run != nil && c.engine.Active() == c.run && !c.run.Status().Terminal()
}

// Press paints the cell under a click.
func (c *Controller) Press(at gridgraph.Coord) {
	if changed, err := c.painter.Apply(at); err != nil {
		c.log.WithError(err).Warn("paint failed")
	} else if changed {
		c.run = nil
	}
}

// Drag paints the cell under a held pointer.
func (c *Controller) Drag(at gridgraph.Coord) {
	if changed, err := c.painter.Drag(at); err != nil {
		c.log.WithError(err).Warn("paint failed")
	} else if changed {
		c.run = nil
	}
}

// Start resets exploration and begins a fresh run of alg.
// Configuration errors are logged and leave no run active.
func (c *Controller) Start(alg search.Algorithm) error {
	c.alg = alg
	r, err := c.engine.Restart(alg)
	if err != nil {
		c.run = nil
		if errors.Is(err, search.ErrConfiguration) {
			c.log.WithError(err).Warn("place one start and one goal before searching")
		}
		return err
	}
	c.run = r
	c.last = search.StepResult{}
	c.log.WithFields(logrus.Fields{"run": r.ID(), "algorithm": alg.String()}).Info("search started")
	return nil
}

// TogglePause flips automatic stepping.
func (c *Controller) TogglePause() { c.paused = !c.paused }

// StepOnce requests a single step on the next Tick, even while paused.
func (c *Controller) StepOnce() { c.tickOnce = true }

// Tick advances the active run by one step unless paused. It reports
// whether a step was taken.
func (c *Controller) Tick() bool {
	if !c.Running() || (c.paused && !c.tickOnce) {
		c.tickOnce = false
		return false
	}
	c.tickOnce = false
	res, err := c.engine.Step(c.run)
	if err != nil {
		c.run = nil
		return false
	}
	c.last = res
	if res.Status.Terminal() {
		c.log.WithFields(logrus.Fields{
			"run":      c.run.ID(),
			"status":   res.Status.String(),
			"steps":    c.run.Steps(),
			"explored": c.run.Explored(),
		}).Info("search finished")
	}
	return true
}

// ResetExploration stops any run and reopens Explored cells.
func (c *Controller) ResetExploration() {
	c.painter.ResetExploration()
	c.run = nil
}

// Clear stops any run and erases everything except Start and Goal.
func (c *Controller) Clear() {
	c.painter.Clear()
	c.run = nil
}

package search

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Engine owns a grid reference and at most one active Run. Starting a
// new run discards the previous one, so stepping a superseded handle
// fails with ErrStaleRun instead of racing the new run.
//
// An Engine is not safe for concurrent use; the driver serializes calls.
type Engine struct {
	grid   *gridgraph.Grid
	opts   []Option
	log    logrus.FieldLogger
	active *Run
}

// NewEngine binds an engine to g. The options apply to every run it starts.
func NewEngine(g *gridgraph.Grid, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{grid: g, opts: opts, log: o.Logger}, nil
}

// Grid returns the grid the engine searches.
func (e *Engine) Grid() *gridgraph.Grid { return e.grid }

// Active returns the current run, or nil.
func (e *Engine) Active() *Run { return e.active }

// StartRun discards any prior run, then validates the grid and seeds a
// new run at its Start. Configuration errors are returned before any
// step executes; on error the engine has no active run.
func (e *Engine) StartRun(alg Algorithm) (*Run, error) {
	e.Invalidate()
	r, err := NewRun(e.grid, alg, e.opts...)
	if err != nil {
		e.log.WithError(err).WithField("algorithm", alg.String()).Debug("run rejected")
		return nil, err
	}
	e.active = r
	return r, nil
}

// Restart resets exploration on the grid and starts a fresh run.
func (e *Engine) Restart(alg Algorithm) (*Run, error) {
	e.ResetExploration()
	return e.StartRun(alg)
}

// Step advances r by one expansion. r must be the active run.
func (e *Engine) Step(r *Run) (StepResult, error) {
	if r == nil || r != e.active {
		return StepResult{}, ErrStaleRun
	}
	return r.Step(), nil
}

// Invalidate discards the active run, if any. Painters call it before
// mutating the grid mid-run.
func (e *Engine) Invalidate() {
	if e.active == nil {
		return
	}
	e.active.discard()
	e.active = nil
}

// ResetExploration discards the active run and sets every Explored cell
// back to Open. It returns the number of cells reset.
func (e *Engine) ResetExploration() int {
	e.Invalidate()
	return e.grid.ResetExploration()
}

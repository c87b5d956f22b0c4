// Package driver repeatedly advances a search run until it terminates.
// It owns cadence only: the engine has no timing of its own, so a tight
// loop, a ticker or single stepping all yield the same step sequence.
package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridsearch/search"
)

// ErrMaxSteps is returned when the step budget runs out before a terminal status.
var ErrMaxSteps = errors.New("driver: step limit reached")

// Stepper is anything that advances one expansion per call.
// RunStepper adapts a bare run; EngineStepper steps through an Engine.
type Stepper interface {
	Step() (search.StepResult, error)
}

// RunStepper adapts a bare *search.Run, whose Step never fails.
type RunStepper struct{ Run *search.Run }

// Step advances the run.
func (s RunStepper) Step() (search.StepResult, error) { return s.Run.Step(), nil }

// EngineStepper steps a run through its engine so a superseded run
// stops the loop with search.ErrStaleRun.
type EngineStepper struct {
	Engine *search.Engine
	Run    *search.Run
}

// Step advances the run if it is still the engine's active run.
func (s EngineStepper) Step() (search.StepResult, error) { return s.Engine.Step(s.Run) }

// Options configures Loop.
type Options struct {
	Interval time.Duration
	MaxSteps int
	OnStep   func(search.StepResult)
}

// Option is a functional Options setter.
type Option func(*Options)

// WithInterval waits d between steps. Zero means a tight loop.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Interval = d
		}
	}
}

// WithMaxSteps stops after n calls to Step. Zero means no limit.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxSteps = n
		}
	}
}

// WithOnStep registers a callback invoked after every step, e.g. to redraw.
func WithOnStep(fn func(search.StepResult)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Summary describes a finished loop.
type Summary struct {
	Status   search.Status
	Steps    int
	Explored int
}

// Loop calls s.Step until the status is terminal, ctx is done, the step
// budget runs out or the stepper fails. On cancellation it returns
// ctx.Err(); the run is simply abandoned.
func Loop(ctx context.Context, s Stepper, opts ...Option) (Summary, error) {
	o := Options{OnStep: func(search.StepResult) {}}
	for _, opt := range opts {
		opt(&o)
	}

	var tick <-chan time.Time
	if o.Interval > 0 {
		t := time.NewTicker(o.Interval)
		defer t.Stop()
		tick = t.C
	}

	var sum Summary
	for calls := 0; ; calls++ {
		if o.MaxSteps > 0 && calls >= o.MaxSteps {
			return sum, fmt.Errorf("%w: %d", ErrMaxSteps, o.MaxSteps)
		}
		select {
		case <-ctx.Done():
			return sum, ctx.Err()
		default:
		}
		if tick != nil && calls > 0 {
			select {
			case <-ctx.Done():
				return sum, ctx.Err()
			case <-tick:
			}
		}

		res, err := s.Step()
		if err != nil {
			return sum, err
		}
		sum.Status = res.Status
		sum.Steps = res.Step
		sum.Explored += len(res.Explored)
		o.OnStep(res)
		if res.Status.Terminal() {
			return sum, nil
		}
	}
}

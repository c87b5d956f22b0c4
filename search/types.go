// Package search defines the algorithm, status and option types for the
// stepwise grid search engine.
package search

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Sentinel errors for run construction and engine use.
var (
	// ErrGridNil is returned if a nil grid is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm outside BFS, DFS, BestFirst.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrConfiguration wraps a grid validation failure found before a run starts.
	ErrConfiguration = errors.New("search: invalid grid configuration")

	// ErrStaleRun is returned when stepping a run that is not the engine's active run.
	ErrStaleRun = errors.New("search: run is not the active run")
)

// Algorithm selects the frontier discipline.
type Algorithm int

const (
	// BFS expands the oldest frontier entry first.
	BFS Algorithm = iota
	// DFS expands the most recently pushed entry first.
	DFS
	// BestFirst expands the entry with the lowest heuristic score first.
	BestFirst
)

// Algorithms lists every supported algorithm in declaration order.
var Algorithms = []Algorithm{BFS, DFS, BestFirst}

// String returns the short algorithm name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case BestFirst:
		return "best-first"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first", "breadth":
		return BFS, nil
	case "dfs", "depth-first", "depth":
		return DFS, nil
	case "best-first", "bestfirst", "best", "greedy", "heuristic":
		return BestFirst, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Status is the state of a run after a step.
type Status int

const (
	// Running means the frontier is non-empty and the goal was not reached.
	Running Status = iota
	// ReachedGoal means the goal was found among the neighbors of an expanded vertex.
	ReachedGoal
	// Exhausted means the frontier emptied without reaching the goal.
	Exhausted
)

// String returns a human-readable status.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case ReachedGoal:
		return "reached goal"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether no further steps may change the run.
func (s Status) Terminal() bool {
	return s == ReachedGoal || s == Exhausted
}

// StepResult reports one call to Step.
//   - Step is the 1-based index of the expansion, unchanged by no-op steps.
//   - Expanded is the vertex popped this step; HasExpanded is false when
//     nothing was popped.
//   - Explored lists coordinates changed to Explored, in change order.
type StepResult struct {
	Step        int
	Expanded    gridgraph.Coord
	HasExpanded bool
	Status      Status
	Explored    []gridgraph.Coord
}

// Option configures a run via functional arguments.
type Option func(*Options)

// Options holds hooks and tunables for a run.
type Options struct {
	// Heuristic builds the best-first scorer from the current goal.
	// Ignored by BFS and DFS.
	Heuristic frontier.Heuristic

	// OnExpand is called with each vertex popped for expansion.
	OnExpand func(c gridgraph.Coord)

	// OnExplore is called each time a cell is marked Explored.
	OnExplore func(c gridgraph.Coord)

	// Logger receives run lifecycle events at debug level.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with the squared Euclidean heuristic,
// no-op hooks and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Heuristic: frontier.SquaredEuclidean,
		OnExpand:  func(gridgraph.Coord) {},
		OnExplore: func(gridgraph.Coord) {},
		Logger:    discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithHeuristic replaces the best-first heuristic.
func WithHeuristic(h frontier.Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a callback for each popped vertex.
func WithOnExpand(fn func(c gridgraph.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnExplore registers a callback for each cell marked Explored.
func WithOnExplore(fn func(c gridgraph.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExplore = fn
		}
	}
}

// WithLogger routes run lifecycle events to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

package search

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Run is the transient state of one in-flight search: the frontier, the
// visited set and the status. It borrows the grid for its lifetime and
// marks Open cells Explored as it goes.
//
// A Run is not safe for concurrent use.
type Run struct {
	id        string
	alg       Algorithm
	grid      *gridgraph.Grid
	opts      Options
	log       logrus.FieldLogger
	front     frontier.Frontier
	visited   mapset.Set[int] // row-major cell index, compared by value
	status    Status
	steps     int
	explored  int
	discarded bool
}

// NewRun validates g and seeds a fresh run at its Start cell: the
// frontier holds exactly Start and the visited set contains Start.
// Returns ErrGridNil, ErrUnknownAlgorithm, or ErrConfiguration wrapping
// the gridgraph validation error.
func NewRun(g *gridgraph.Grid, alg Algorithm, opts ...Option) (*Run, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	r := &Run{
		id:      uuid.NewString(),
		alg:     alg,
		grid:    g,
		opts:    o,
		visited: mapset.New[int](),
		status:  Running,
	}
	switch alg {
	case BFS:
		r.front = frontier.NewQueue()
	case DFS:
		r.front = frontier.NewStack()
	case BestFirst:
		r.front = frontier.NewPriority(r.score)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	r.log = o.Logger.WithFields(logrus.Fields{"run": r.id, "algorithm": alg.String()})

	start, _ := g.Start()
	r.visited.Put(g.Index(start))
	r.front.Push(start)
	r.log.WithField("start", start.String()).Debug("run started")

	return r, nil
}

// score evaluates the heuristic against the grid's current goal.
func (r *Run) score(c gridgraph.Coord) int {
	goal, _ := r.grid.Goal()
	return r.opts.Heuristic(goal)(c)
}

// Step performs one expansion:
//  1. an empty frontier yields Exhausted;
//  2. one coordinate is popped per the frontier discipline;
//  3. each neighbor, in left, right, up, down order, is skipped if
//     visited, explored and pushed if Open, or ends the run with
//     ReachedGoal if it is the Goal;
//  4. the run stays Running while the frontier is non-empty.
//
// Once the status is terminal, or the run was discarded, Step changes
// nothing and returns the current status. Step never fails.
func (r *Run) Step() StepResult {
	if r.status.Terminal() || r.discarded {
		return StepResult{Step: r.steps, Status: r.status}
	}
	cur, ok := r.front.Pop()
	if !ok {
		return r.finish(StepResult{Step: r.steps}, Exhausted)
	}
	r.steps++
	res := StepResult{Step: r.steps, Expanded: cur, HasExpanded: true}
	r.opts.OnExpand(cur)

	for _, n := range r.grid.Neighbors(cur) {
		key := r.grid.Index(n.Coord)
		if r.visited.Has(key) {
			continue
		}
		switch n.State {
		case gridgraph.Open:
			r.visited.Put(key)
			r.front.Push(n.Coord)
			_ = r.grid.Set(n.Coord, gridgraph.Explored)
			r.explored++
			res.Explored = append(res.Explored, n.Coord)
			r.opts.OnExplore(n.Coord)
		case gridgraph.Goal:
			return r.finish(res, ReachedGoal)
		}
	}

	if r.front.Len() == 0 {
		return r.finish(res, Exhausted)
	}
	res.Status = Running
	return res
}

// finish records a terminal status on r and res.
func (r *Run) finish(res StepResult, s Status) StepResult {
	r.status = s
	res.Status = s
	r.log.WithFields(logrus.Fields{
		"status":   s.String(),
		"steps":    r.steps,
		"explored": r.explored,
	}).Debug("run finished")
	return res
}

// discard drops the frontier and visited set. The run keeps its status
// but can no longer be stepped.
func (r *Run) discard() {
	if r.discarded {
		return
	}
	r.discarded = true
	r.front = frontier.NewQueue()
	r.visited = mapset.New[int]()
	r.log.WithField("steps", r.steps).Debug("run discarded")
}

// ID returns the run's unique identifier.
func (r *Run) ID() string { return r.id }

// Algorithm returns the run's frontier discipline.
func (r *Run) Algorithm() Algorithm { return r.alg }

// Status returns the status after the most recent step.
func (r *Run) Status() Status { return r.status }

// Steps returns the number of expansions performed.
func (r *Run) Steps() int { return r.steps }

// Explored returns how many cells this run has marked Explored.
func (r *Run) Explored() int { return r.explored }

// Visited returns the size of the visited set, Start included.
func (r *Run) Visited() int { return r.visited.Size() }

// Pending returns the current frontier length.
func (r *Run) Pending() int { return r.front.Len() }

// Discarded reports whether the run was invalidated by its engine.
func (r *Run) Discarded() bool { return r.discarded }

// Walk steps r until its status is terminal and returns every step.
func Walk(r *Run) []StepResult {
	var out []StepResult
	for !r.Status().Terminal() && !r.Discarded() {
		out = append(out, r.Step())
	}
	return out
}

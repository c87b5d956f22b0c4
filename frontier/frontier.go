package frontier

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Frontier is the set of coordinates awaiting expansion.
type Frontier interface {
	// Push adds c to the frontier.
	Push(c gridgraph.Coord)
	// Pop removes and returns the next coordinate, or false when empty.
	Pop() (gridgraph.Coord, bool)
	// Len reports the number of coordinates waiting.
	Len() int
}

// Queue is a FIFO frontier.
type Queue struct {
	q *queue.Queue[gridgraph.Coord]
	n int
}

// NewQueue returns an empty FIFO frontier.
func NewQueue() *Queue {
	return &Queue{q: queue.New[gridgraph.Coord]()}
}

// Push appends c at the back.
func (f *Queue) Push(c gridgraph.Coord) {
	f.q.Enqueue(c)
	f.n++
}

// Pop removes the oldest coordinate.
func (f *Queue) Pop() (gridgraph.Coord, bool) {
	if f.n == 0 {
		return gridgraph.Coord{}, false
	}
	f.n--
	return f.q.Dequeue(), true
}

// Len reports the queue length.
func (f *Queue) Len() int { return f.n }

// Stack is a LIFO frontier.
type Stack struct {
	s *stack.Stack[gridgraph.Coord]
	n int
}

// NewStack returns an empty LIFO frontier.
func NewStack() *Stack {
	return &Stack{s: stack.New[gridgraph.Coord]()}
}

// Push places c on top.
func (f *Stack) Push(c gridgraph.Coord) {
	f.s.Push(c)
	f.n++
}

// Pop removes the most recently pushed coordinate.
func (f *Stack) Pop() (gridgraph.Coord, bool) {
	if f.n == 0 {
		return gridgraph.Coord{}, false
	}
	f.n--
	return f.s.Pop(), true
}

// Len reports the stack depth.
func (f *Stack) Len() int { return f.n }

// Scorer assigns a priority score to a coordinate; lower pops first.
type Scorer func(c gridgraph.Coord) int

// entry is a scored coordinate; seq preserves insertion order among
// equal scores.
type entry struct {
	coord gridgraph.Coord
	score int
	seq   uint64
}

// Priority is a min-score frontier with stable tie-breaking.
type Priority struct {
	h     *heap.Heap[entry]
	score Scorer
	seq   uint64
}

// NewPriority returns an empty priority frontier ordered by score.
// A nil score orders purely by insertion, like a Queue.
func NewPriority(score Scorer) *Priority {
	if score == nil {
		score = func(gridgraph.Coord) int { return 0 }
	}
	return &Priority{
		h: heap.New[entry](func(a, b entry) bool {
			if a.score != b.score {
				return a.score < b.score
			}
			return a.seq < b.seq
		}),
		score: score,
	}
}

// Push scores c and inserts it.
func (f *Priority) Push(c gridgraph.Coord) {
	f.h.Push(entry{coord: c, score: f.score(c), seq: f.seq})
	f.seq++
}

// Pop removes the lowest-scored coordinate, oldest first among ties.
func (f *Priority) Pop() (gridgraph.Coord, bool) {
	e, ok := f.h.Pop()
	if !ok {
		return gridgraph.Coord{}, false
	}
	return e.coord, true
}

// Len reports the number of queued entries.
func (f *Priority) Len() int { return f.h.Size() }

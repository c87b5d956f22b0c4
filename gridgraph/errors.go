package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrUnknownCell indicates a cell value or rune that is not a CellState.
	ErrUnknownCell = errors.New("gridgraph: unknown cell state")
	// ErrNoStart indicates no Start cell is placed.
	ErrNoStart = errors.New("gridgraph: grid has no start cell")
	// ErrNoGoal indicates no Goal cell is placed.
	ErrNoGoal = errors.New("gridgraph: grid has no goal cell")
	// ErrDuplicateStart indicates more than one Start cell.
	ErrDuplicateStart = errors.New("gridgraph: grid has more than one start cell")
	// ErrDuplicateGoal indicates more than one Goal cell.
	ErrDuplicateGoal = errors.New("gridgraph: grid has more than one goal cell")
)

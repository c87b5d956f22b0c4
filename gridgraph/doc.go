// Package gridgraph provides the fixed-size 2-D grid model that the search
// engine explores and the painter and renderer operate on.
//
// What:
//
//   - Grid holds Width×Height CellState values (Wall, Open, Start, Goal,
//     Explored) in row-major order plus the current Start and Goal.
//   - Get and Set give bounds-checked cell access; out-of-bounds
//     coordinates are an error, never clamped.
//   - Neighbors returns the up-to-4 orthogonal neighbors in the fixed order
//     left, right, up, down. There are no diagonal neighbors.
//   - FromStrings and Parse read a one-rune-per-cell text map; String
//     writes the same form.
//
// Why:
//
//   - The neighbor order is part of the contract: FIFO and LIFO searches
//     break ties by insertion order, so exploration is reproducible only
//     if the order is fixed.
//   - The grid enforces no paint invariants. Keeping exactly one Start and
//     one Goal is the painter's job; Validate checks it before a run.
//
// Complexity:
//
//   - Get, Set, Neighbors, InBounds: O(1).
//   - Validate, Count, ResetExploration, ReachableOpen: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: bad construction input.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrUnknownCell: value or rune that is not a CellState.
//   - ErrNoStart, ErrNoGoal, ErrDuplicateStart, ErrDuplicateGoal: Validate.
package gridgraph

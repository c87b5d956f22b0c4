// Package frontier provides the three frontier disciplines a grid search
// can be driven by:
//
//   - Queue:    FIFO, oldest inserted coordinate first (breadth-first).
//   - Stack:    LIFO, most recently inserted coordinate first (depth-first).
//   - Priority: lowest score first, ties in insertion order (best-first).
//
// All three satisfy Frontier, so the search skeleton is identical across
// algorithms and differs only in which container it was handed.
//
// Priority scores are computed once, when a coordinate is pushed, from the
// Scorer supplied at construction. SquaredEuclidean and Manhattan build
// scorers bound to a goal coordinate.
//
// Complexity:
//
//   - Queue, Stack: O(1) Push and Pop.
//   - Priority:     O(log n) Push and Pop.
package frontier

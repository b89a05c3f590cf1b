package graphs

import "errors"

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("graphs: grid must have at least one row and one column")

	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("graphs: all grid rows must have the same length")

	// ErrCycleDetected indicates a cycle in a graph that must be acyclic.
	ErrCycleDetected = errors.New("graphs: cycle detected")

	// ErrBadVertex indicates a vertex label outside the graph.
	ErrBadVertex = errors.New("graphs: vertex out of range")
)

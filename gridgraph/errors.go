package gridgraph

import "errors"

var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to NewGridGraph.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrNilPredicate indicates a nil land predicate.
	ErrNilPredicate = errors.New("gridgraph: land predicate is nil")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

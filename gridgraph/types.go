package gridgraph

import (
	"cmp"

	"github.com/katalvlaran/grid2d/grid"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses the full Moore neighborhood: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings: Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn4,
	}
}

// AtLeast returns a land predicate accepting values >= threshold.
// AtLeast(1) reproduces the classic "0 is water, anything positive is land".
func AtLeast[T cmp.Ordered](threshold T) func(T) bool {
	return func(v T) bool { return v >= threshold }
}

// GridGraph treats a grid.Grid[T] as a graph. It is immutable once built:
// the cells are copied at construction.
// Conn is set from GridOptions; land decides which cells are “land”.
type GridGraph[T any] struct {
	Conn  Connectivity
	cells *grid.Grid[T]
	land  func(T) bool
}

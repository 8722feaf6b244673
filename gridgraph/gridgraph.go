package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/grid2d/grid"
)

// NewGridGraph constructs a GridGraph over a copy of g, so later writes to g
// are not observed.
// Returns ErrNilGrid if g is nil, ErrNilPredicate if land is nil.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph[T any](g *grid.Grid[T], land func(T) bool, opts GridOptions) (*GridGraph[T], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if land == nil {
		return nil, ErrNilPredicate
	}

	return &GridGraph[T]{Conn: opts.Conn, cells: g.Clone(), land: land}, nil
}

// From2D builds a GridGraph from a non-empty, rectangular 2D slice, rows
// indexed by y. The values are copied into a fresh grid.Grid.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNilPredicate if land is nil.
// Algorithmic complexity: O(W×H) time and memory.
func From2D[T any](rows [][]T, land func(T) bool, conn Connectivity) (*GridGraph[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if land == nil {
		return nil, ErrNilPredicate
	}
	w := len(rows[0])
	b := grid.NewBuilder(make([]T, 0, len(rows)*w))
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		b.Append(row...)
	}
	g, err := b.Width(uint(w)).Height(uint(len(rows))).Build()
	if err != nil {
		return nil, fmt.Errorf("From2D: %w", err)
	}

	return &GridGraph[T]{Conn: conn, cells: g, land: land}, nil
}

// Width returns the number of columns.
func (gg *GridGraph[T]) Width() uint { return gg.cells.Width() }

// Height returns the number of rows.
func (gg *GridGraph[T]) Height() uint { return gg.cells.Height() }

// Value returns the cell value at c, or ok=false outside the grid.
func (gg *GridGraph[T]) Value(c grid.Coordinate) (T, bool) {
	return gg.cells.Get(c)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph[T]) InBounds(c grid.Coordinate) bool {
	return gg.cells.Encompasses(c)
}

// IsLand reports whether c is inside the grid and its value is land.
func (gg *GridGraph[T]) IsLand(c grid.Coordinate) bool {
	v, ok := gg.cells.Get(c)
	return ok && gg.land(v)
}

// NeighborCoordinates returns the in-grid neighbors of c under gg.Conn, in
// row-major order. Conn8 is the grid's Moore neighborhood; Conn4 keeps the
// neighbors sharing a row or a column with c.
// Complexity: O(1).
func (gg *GridGraph[T]) NeighborCoordinates(c grid.Coordinate) []grid.Coordinate {
	ns := gg.cells.NeighborCoordinates(c)
	if gg.Conn == Conn8 {
		return ns
	}
	out := ns[:0]
	for _, n := range ns {
		if n.X() == c.X() || n.Y() == c.Y() {
			out = append(out, n)
		}
	}

	return out
}

// index maps an in-grid coordinate to its row-major index.
// Complexity: O(1).
func (gg *GridGraph[T]) index(c grid.Coordinate) int {
	i, _ := c.AsIndex(gg.cells.Width())
	return int(i)
}

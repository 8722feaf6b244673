// SPDX-License-Identifier: MIT

package grid

import "iter"

// Values yields every cell in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Pointers yields a pointer to every cell in row-major order.
func (g *Grid[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range g.items {
			if !yield(&g.items[i]) {
				return
			}
		}
	}
}

// All yields every cell with its coordinate in row-major order.
func (g *Grid[T]) All() iter.Seq2[Coordinate, T] {
	return func(yield func(Coordinate, T) bool) {
		for i, v := range g.items {
			if !yield(CoordinateFromIndex(g.width, uint(i)), v) {
				return
			}
		}
	}
}

// AllPointers yields a pointer to every cell with its coordinate in
// row-major order.
func (g *Grid[T]) AllPointers() iter.Seq2[Coordinate, *T] {
	return func(yield func(Coordinate, *T) bool) {
		for i := range g.items {
			if !yield(CoordinateFromIndex(g.width, uint(i)), &g.items[i]) {
				return
			}
		}
	}
}

// Rows yields Height() slices of Width() cells each, top to bottom.
// Each row aliases the grid; its capacity is clipped to Width() so an
// append never spills into the next row.
func (g *Grid[T]) Rows() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		w := int(g.width)
		for start := 0; start < len(g.items); start += w {
			end := start + w
			if !yield(g.items[start:end:end]) {
				return
			}
		}
	}
}

// NeighborCoordinates returns the Moore neighbors of c that lie inside the
// grid, in row-major order: 3 for a corner, 5 for an edge cell and 8 for an
// interior cell (given W, H >= 3).
func (g *Grid[T]) NeighborCoordinates(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(mooreOffsets))
	for n := range c.Neighbors() {
		if g.Encompasses(n) {
			out = append(out, n)
		}
	}

	return out
}

// Neighbors yields the in-grid Moore neighbors of c with their values, in
// row-major order.
func (g *Grid[T]) Neighbors(c Coordinate) iter.Seq2[Coordinate, T] {
	return func(yield func(Coordinate, T) bool) {
		for _, n := range g.NeighborCoordinates(c) {
			i, _ := n.AsIndex(g.width)
			if !yield(n, g.items[i]) {
				return
			}
		}
	}
}

// NeighborPointers yields the in-grid Moore neighbors of c with pointers to
// their cells, in row-major order.
func (g *Grid[T]) NeighborPointers(c Coordinate) iter.Seq2[Coordinate, *T] {
	return func(yield func(Coordinate, *T) bool) {
		for _, n := range g.NeighborCoordinates(c) {
			i, _ := n.AsIndex(g.width)
			if !yield(n, &g.items[i]) {
				return
			}
		}
	}
}

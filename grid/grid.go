// SPDX-License-Identifier: MIT

package grid

import (
	"iter"
	"math"
	"math/bits"
	"slices"
)

// Grid is a fixed-size W×H container stored row-major in one slice.
//
// Invariants (hold for every Grid returned by this package):
//   - width >= 1;
//   - len(items) is a positive multiple of width, so Height() is exact;
//   - width*height fits into an int (a valid slice length).
//
// Height is never stored; it is always derived as len(items)/width.
type Grid[T any] struct {
	width uint // number of columns, >= 1
	items []T  // row-major cells, len == width*height
}

// New allocates a width×height Grid and fills it by calling init once per
// cell in index order 0..Size()-1. A nil init leaves every cell at T's zero
// value.
//
// Stage 1 (Validate): non-zero dimensions, no overflow of width*height.
// Stage 2 (Prepare): allocate exactly Size() cells.
// Stage 3 (Finalize): run init in row-major order.
//
// Errors: ErrZeroWidth, ErrZeroHeight, ErrSizeOverflow.
// Complexity: O(W×H) time and memory.
func New[T any](width, height uint, init func() T) (*Grid[T], error) {
	size, err := checkedSize(width, height)
	if err != nil {
		return nil, err
	}

	items := make([]T, size)
	if init != nil {
		for i := range items {
			items[i] = init()
		}
	}

	return newUnchecked(width, items), nil
}

// MustNew is like New but panics on invalid dimensions. Use it when the
// dimensions are program constants.
func MustNew[T any](width, height uint, init func() T) *Grid[T] {
	g, err := New(width, height, init)
	if err != nil {
		panic(err)
	}

	return g
}

// NewZero allocates a width×height Grid of zero values.
func NewZero[T any](width, height uint) (*Grid[T], error) {
	return New[T](width, height, nil)
}

// FromSlice wraps items as a Grid of the given width. The Grid takes
// ownership of items; the caller must not keep mutating the slice.
//
// Errors: ErrZeroWidth, ErrNoItems, ErrSizeNotMultipleOfWidth.
// Complexity: O(1).
func FromSlice[T any](items []T, width uint) (*Grid[T], error) {
	if width == 0 {
		return nil, ErrZeroWidth
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if uint(len(items))%width != 0 {
		return nil, ErrSizeNotMultipleOfWidth
	}

	return newUnchecked(width, items), nil
}

// FromSeq collects a finite sequence and validates it like FromSlice.
func FromSeq[T any](seq iter.Seq[T], width uint) (*Grid[T], error) {
	if width == 0 {
		return nil, ErrZeroWidth
	}

	return FromSlice(slices.Collect(seq), width)
}

// newUnchecked builds a Grid without validation.
// Precondition: width >= 1 and len(items) is a positive multiple of width.
// Only constructors in this package that have proven the precondition call it.
func newUnchecked[T any](width uint, items []T) *Grid[T] {
	return &Grid[T]{width: width, items: items}
}

// checkedSize returns width*height or the reason it is not a valid length.
func checkedSize(width, height uint) (int, error) {
	if width == 0 {
		return 0, ErrZeroWidth
	}
	if height == 0 {
		return 0, ErrZeroHeight
	}
	hi, size := bits.Mul(width, height)
	if hi != 0 || size > math.MaxInt {
		return 0, ErrSizeOverflow
	}

	return int(size), nil
}

// Width returns the number of columns.
// Complexity: O(1).
func (g *Grid[T]) Width() uint {
	return g.width
}

// Height returns the number of rows, derived as Size()/Width().
// Complexity: O(1).
func (g *Grid[T]) Height() uint {
	return uint(len(g.items)) / g.width
}

// Size returns the number of cells; never zero.
// Complexity: O(1).
func (g *Grid[T]) Size() uint {
	return uint(len(g.items))
}

// index resolves c to a slice index. The column bound and overflow are
// checked by AsIndex; the row bound by comparing against the length.
func (g *Grid[T]) index(c Coordinate) (uint, bool) {
	i, ok := c.AsIndex(g.width)
	if !ok || i >= uint(len(g.items)) {
		return 0, false
	}

	return i, true
}

// Get returns the value at c, or ok=false when c lies outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Get(c Coordinate) (v T, ok bool) {
	i, ok := g.index(c)
	if !ok {
		return v, false
	}

	return g.items[i], true
}

// Ptr returns a pointer to the cell at c, or nil when c lies outside the
// grid. Writes through the pointer modify the grid.
// Complexity: O(1).
func (g *Grid[T]) Ptr(c Coordinate) *T {
	i, ok := g.index(c)
	if !ok {
		return nil
	}

	return &g.items[i]
}

// Set stores v at c and reports whether c lies inside the grid.
func (g *Grid[T]) Set(c Coordinate, v T) bool {
	p := g.Ptr(c)
	if p == nil {
		return false
	}
	*p = v

	return true
}

// At returns the value at c and panics if c lies outside the grid, the way
// indexing a slice out of range does. Prefer Get for untrusted input.
func (g *Grid[T]) At(c Coordinate) T {
	i, ok := g.index(c)
	if !ok {
		panic("grid: index out of bounds: " + c.String())
	}

	return g.items[i]
}

// Slice returns the backing slice in row-major order. It aliases the grid.
func (g *Grid[T]) Slice() []T {
	return g.items
}

// Encompasses reports whether c lies inside the grid.
// Complexity: O(1).
func (g *Grid[T]) Encompasses(c Coordinate) bool {
	return c.x < g.width && c.y < g.Height()
}

// Clone returns a Grid with the same shape and a copy of the cells.
// Elements are copied by assignment (pointers inside T are shared).
// Complexity: O(W×H).
func (g *Grid[T]) Clone() *Grid[T] {
	return newUnchecked(g.width, slices.Clone(g.items))
}

// Contains reports whether any cell equals v.
// Complexity: O(W×H).
func Contains[T comparable](g *Grid[T], v T) bool {
	return slices.Contains(g.items, v)
}

// Equal reports whether a and b have the same width and equal cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	return a.width == b.width && slices.Equal(a.items, b.items)
}

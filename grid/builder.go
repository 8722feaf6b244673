// SPDX-License-Identifier: MIT

package grid

import (
	"iter"
	"math/bits"
)

// Builder accumulates items and optional width/height hints, then turns
// them into a Grid with Build. Hint setters may be called in any order and
// any number of times; the last call for a dimension wins.
//
// A Builder is single-use: Build hands the items to the Grid (or back in a
// *BuildError) and resets the Builder to empty.
type Builder[T any] struct {
	items     []T
	width     uint
	height    uint
	hasWidth  bool
	hasHeight bool
}

// NewBuilder returns a Builder seeded with items. The Builder takes
// ownership of the slice.
func NewBuilder[T any](items []T) *Builder[T] {
	return &Builder[T]{items: items}
}

// Width sets the desired width.
func (b *Builder[T]) Width(width uint) *Builder[T] {
	b.width, b.hasWidth = width, true
	return b
}

// Height sets the desired height.
func (b *Builder[T]) Height(height uint) *Builder[T] {
	b.height, b.hasHeight = height, true
	return b
}

// Push appends a single item.
func (b *Builder[T]) Push(item T) *Builder[T] {
	b.items = append(b.items, item)
	return b
}

// Append appends items in order.
func (b *Builder[T]) Append(items ...T) *Builder[T] {
	b.items = append(b.items, items...)
	return b
}

// Extend appends every value of a finite sequence.
func (b *Builder[T]) Extend(seq iter.Seq[T]) *Builder[T] {
	for v := range seq {
		b.items = append(b.items, v)
	}
	return b
}

// Items returns the accumulated items. The slice aliases the Builder.
func (b *Builder[T]) Items() []T {
	return b.items
}

// Len returns the number of accumulated items.
func (b *Builder[T]) Len() int {
	return len(b.items)
}

// Build validates the hints against the item count n and returns the Grid.
//
//   - width and height: width*height must equal n     → else ErrSizeMismatch.
//   - width only:       width <= n                    → else ErrTooWide;
//     n % width == 0                                  → else ErrSizeNotMultipleOfWidth.
//   - height only:      height <= n                   → else ErrTooTall;
//     n % height == 0, width = n/height               → else ErrSizeNotMultipleOfHeight.
//   - neither:                                          ErrNeitherDimensionSet.
//
// A hint set to zero fails with ErrZeroWidth or ErrZeroHeight.
// Every failure is a *BuildError[T] that carries the items unchanged.
// Complexity: O(1).
func (b *Builder[T]) Build() (*Grid[T], error) {
	items := b.items
	width, hasWidth := b.width, b.hasWidth
	height, hasHeight := b.height, b.hasHeight
	*b = Builder[T]{}

	fail := func(err error) (*Grid[T], error) {
		return nil, &BuildError[T]{Err: err, Items: items}
	}

	if hasWidth && width == 0 {
		return fail(ErrZeroWidth)
	}
	if hasHeight && height == 0 {
		return fail(ErrZeroHeight)
	}

	n := uint(len(items))
	switch {
	case hasWidth && hasHeight:
		hi, size := bits.Mul(width, height)
		if hi != 0 || size != n {
			return fail(ErrSizeMismatch)
		}
	case hasWidth:
		if width > n {
			return fail(ErrTooWide)
		}
		if n%width != 0 {
			return fail(ErrSizeNotMultipleOfWidth)
		}
	case hasHeight:
		if height > n {
			return fail(ErrTooTall)
		}
		if n%height != 0 {
			return fail(ErrSizeNotMultipleOfHeight)
		}
		width = n / height
	default:
		return fail(ErrNeitherDimensionSet)
	}

	return newUnchecked(width, items), nil
}

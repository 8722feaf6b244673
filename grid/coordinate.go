// SPDX-License-Identifier: MIT

package grid

import (
	"iter"
	"math"
	"math/bits"
	"strconv"
)

// Coordinate is an immutable (x, y) position. x grows to the right, y grows
// downwards. Any pair is a legal Coordinate; whether it lies inside a given
// Grid is checked by the Grid.
//
// Coordinate is comparable and may be used as a map key.
type Coordinate struct {
	x, y uint
}

// NewCoordinate returns the Coordinate (x, y).
func NewCoordinate(x, y uint) Coordinate {
	return Coordinate{x: x, y: y}
}

// CoordinateFromArray returns the Coordinate (xy[0], xy[1]).
func CoordinateFromArray(xy [2]uint) Coordinate {
	return Coordinate{x: xy[0], y: xy[1]}
}

// CoordinateFromIndex maps a row-major linear index back to (x, y):
// x = index % width, y = (index - x) / width.
//
// width must be non-zero; a zero width panics with the runtime's integer
// divide error. Grids always pass their own validated width.
// Complexity: O(1).
func CoordinateFromIndex(width, index uint) Coordinate {
	x := index % width
	return Coordinate{x: x, y: (index - x) / width}
}

// X returns the column.
func (c Coordinate) X() uint { return c.x }

// Y returns the row.
func (c Coordinate) Y() uint { return c.y }

// XY returns both components.
func (c Coordinate) XY() (x, y uint) { return c.x, c.y }

// Array returns the coordinate as [x, y].
func (c Coordinate) Array() [2]uint { return [2]uint{c.x, c.y} }

// AsIndex maps the coordinate to the row-major index y*width + x.
//
// It reports false when width is zero, when x >= width, or when the
// multiplication or addition would overflow. Only the column bound is
// checked here; the row bound is the caller's (Grid compares the index
// against its length).
// Complexity: O(1).
func (c Coordinate) AsIndex(width uint) (uint, bool) {
	if width == 0 || c.x >= width {
		return 0, false
	}
	hi, row := bits.Mul(c.y, width)
	if hi != 0 {
		return 0, false
	}
	idx, carry := bits.Add(row, c.x, 0)
	if carry != 0 {
		return 0, false
	}

	return idx, true
}

// mooreOffsets lists the 8 neighbor offsets as {dx, dy} in row-major scan
// order: up-left, up, up-right, left, right, down-left, down, down-right.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors yields the Moore neighborhood of c (up to 8 coordinates) in the
// fixed order up-left, up, up-right, left, right, down-left, down,
// down-right. Offsets that would go below zero or past math.MaxUint on
// either axis are skipped. The sequence is finite and may be ranged over
// any number of times.
func (c Coordinate) Neighbors() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for _, d := range mooreOffsets {
			x, okX := shift(c.x, d[0])
			y, okY := shift(c.y, d[1])
			if !okX || !okY {
				continue
			}
			if !yield(Coordinate{x: x, y: y}) {
				return
			}
		}
	}
}

// shift adds d ∈ {-1, 0, 1} to v, reporting false on underflow or overflow.
func shift(v uint, d int) (uint, bool) {
	switch {
	case d < 0:
		if v == 0 {
			return 0, false
		}
		return v - 1, true
	case d > 0:
		if v == math.MaxUint {
			return 0, false
		}
		return v + 1, true
	}

	return v, true
}

// String renders the coordinate as "<x>x<y>", e.g. "42x1337".
// ParseCoordinate accepts this form.
func (c Coordinate) String() string {
	return strconv.FormatUint(uint64(c.x), 10) + "x" + strconv.FormatUint(uint64(c.y), 10)
}

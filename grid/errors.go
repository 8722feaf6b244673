// SPDX-License-Identifier: MIT

// Package grid: sentinel error set.
// Every message is prefixed with "grid: ". Callers branch with errors.Is;
// context is attached only through %w wrapping.

package grid

import "errors"

// Construction errors (New, MustNew, FromSlice, FromSeq, Builder hints).
var (
	// ErrZeroWidth indicates a width of zero was requested.
	ErrZeroWidth = errors.New("grid: width must not be zero")

	// ErrZeroHeight indicates a height of zero was requested.
	ErrZeroHeight = errors.New("grid: height must not be zero")

	// ErrSizeOverflow indicates width*height does not fit into a slice length.
	ErrSizeOverflow = errors.New("grid: width*height overflows")

	// ErrNoItems indicates an empty item list where at least one cell is required.
	ErrNoItems = errors.New("grid: no items")

	// ErrSizeNotMultipleOfWidth indicates the item count is not a multiple of the width.
	ErrSizeNotMultipleOfWidth = errors.New("grid: item count is not a multiple of the width")
)

// Builder errors. Build reports them inside a *BuildError[T].
var (
	// ErrNeitherDimensionSet indicates Build was called without width or height.
	ErrNeitherDimensionSet = errors.New("grid: neither a width nor a height was set")

	// ErrTooWide indicates the width exceeds the item count.
	ErrTooWide = errors.New("grid: the width exceeds the item count")

	// ErrTooTall indicates the height exceeds the item count.
	ErrTooTall = errors.New("grid: the height exceeds the item count")

	// ErrSizeMismatch indicates width*height differs from the item count.
	ErrSizeMismatch = errors.New("grid: width*height does not match the item count")

	// ErrSizeNotMultipleOfHeight indicates the item count is not a multiple of the height.
	ErrSizeNotMultipleOfHeight = errors.New("grid: item count is not a multiple of the height")
)

// Coordinate parsing errors (ParseCoordinate).
var (
	// ErrNotTwoTokens indicates the input did not split into exactly two tokens.
	ErrNotTwoTokens = errors.New("grid: coordinate must consist of two numbers")

	// ErrInvalidXValue indicates the x token is not an unsigned integer.
	// The underlying *strconv.NumError is wrapped alongside.
	ErrInvalidXValue = errors.New("grid: invalid x value")

	// ErrInvalidYValue indicates the y token is not an unsigned integer.
	// The underlying *strconv.NumError is wrapped alongside.
	ErrInvalidYValue = errors.New("grid: invalid y value")
)

// BuildError reports a rejected Builder.Build and hands the items back
// untouched, so the caller can retry with different hints.
//
// errors.Is(err, ErrTooWide) etc. matches through Unwrap; use errors.As to
// recover the items:
//
//	var be *grid.BuildError[int]
//	if errors.As(err, &be) {
//		retry := grid.NewBuilder(be.Items).Width(2)
//	}
type BuildError[T any] struct {
	Err   error // one of the builder sentinels, ErrZeroWidth or ErrZeroHeight
	Items []T   // the items accumulated by the builder, in order
}

// Error implements error.
func (e *BuildError[T]) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the sentinel to errors.Is.
func (e *BuildError[T]) Unwrap() error {
	return e.Err
}

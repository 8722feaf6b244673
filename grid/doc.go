// Package grid provides a fixed-size, two-dimensional dense container over
// arbitrary element types.
//
// What:
//
//   - Coordinate is an immutable (x, y) value with overflow-checked
//     row-major index mapping and Moore-neighborhood enumeration.
//   - Grid[T] owns one contiguous row-major slice plus a width; height is
//     always derived as Size()/Width() and is exact by construction.
//   - Builder[T] reconciles a flat list of items against an optional width
//     and/or height and reports precisely why a shape was rejected, handing
//     the items back inside the error.
//
// Why:
//
//   - Pathfinding, cellular automata, image-like buffers: all want
//     cache-friendly storage plus safe (x, y) addressing.
//
// Complexity:
//
//   - Width, Height, Size, Get, Ptr, Encompasses: O(1).
//   - NeighborCoordinates, Neighbors: O(1) (at most 8 candidates).
//   - Values, All, Rows, String: O(W×H).
//   - Contains: O(W×H) linear scan.
//
// Errors:
//
//   - ErrZeroWidth, ErrZeroHeight, ErrSizeOverflow, ErrNoItems,
//     ErrSizeNotMultipleOfWidth: construction.
//   - ErrNeitherDimensionSet, ErrTooWide, ErrTooTall, ErrSizeMismatch,
//     ErrSizeNotMultipleOfHeight: Builder.Build (wrapped in *BuildError[T]).
//   - ErrNotTwoTokens, ErrInvalidXValue, ErrInvalidYValue: ParseCoordinate.
//
// Out-of-bounds coordinate queries are not errors: checked accessors report
// absence (ok=false or nil). Only At and MustNew panic on misuse.
//
// Concurrency:
//
//	A Grid has no internal locking. Concurrent readers are safe; any writer
//	needs exclusive access to the whole Grid, arranged by the caller.
package grid

// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// isCoordinateSeparator reports whether r separates the x and y tokens.
func isCoordinateSeparator(r rune) bool {
	return r == ' ' || r == ',' || r == 'x'
}

// ParseCoordinate parses "x<sep>y" where <sep> is any run of ' ', ',' or
// 'x'. Surrounding whitespace is ignored, so "42x1337", "0, 0" and " 3 4 "
// are all accepted.
//
// Errors:
//   - ErrNotTwoTokens if the input does not split into exactly two tokens.
//   - ErrInvalidXValue / ErrInvalidYValue if a token is not an unsigned
//     integer; the *strconv.NumError is wrapped too, so errors.As finds it.
func ParseCoordinate(s string) (Coordinate, error) {
	tokens := strings.FieldsFunc(strings.TrimSpace(s), isCoordinateSeparator)
	if len(tokens) != 2 {
		return Coordinate{}, ErrNotTwoTokens
	}

	x, err := strconv.ParseUint(tokens[0], 10, bits.UintSize)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %w", ErrInvalidXValue, err)
	}
	y, err := strconv.ParseUint(tokens[1], 10, bits.UintSize)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %w", ErrInvalidYValue, err)
	}

	return NewCoordinate(uint(x), uint(y)), nil
}

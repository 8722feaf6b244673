// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// String renders the grid as text: cells formatted with fmt.Fprint,
// separated by tabs within a row and by newlines between rows. There is no
// trailing newline.
// Complexity: O(W×H) for string construction.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	first := true
	for row := range g.Rows() {
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		for x, v := range row {
			if x > 0 {
				sb.WriteByte('\t')
			}
			fmt.Fprint(&sb, v)
		}
	}

	return sb.String()
}

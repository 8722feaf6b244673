package gridgraph

import "github.com/katalvlaran/grid2d/grid"

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// according to gg.Conn connectivity.
// Components are discovered in row-major order of their first cell; the
// cells of each component are listed in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph[T]) ConnectedComponents() [][]grid.Coordinate {
	cells := gg.cells.Slice()
	width := gg.cells.Width()
	seen := make([]bool, len(cells))
	var comps [][]grid.Coordinate

	for i0, v := range cells {
		if seen[i0] || !gg.land(v) {
			continue // water or already collected
		}
		// BFS to collect component
		seen[i0] = true
		comp := []grid.Coordinate{grid.CoordinateFromIndex(width, uint(i0))}
		for qi := 0; qi < len(comp); qi++ {
			for _, n := range gg.NeighborCoordinates(comp[qi]) {
				ni := gg.index(n)
				if seen[ni] || !gg.land(cells[ni]) {
					continue
				}
				seen[ni] = true
				comp = append(comp, n)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

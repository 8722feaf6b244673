// Package grid2d is a fixed-size, two-dimensional dense container for Go,
// plus grid algorithms built on it.
//
// What is grid2d?
//
//	A small, dependency-free library:
//		• grid      — Coordinate, Grid[T] and Builder[T]: row-major storage,
//		              overflow-checked (x, y) ↔ index mapping, Moore neighbors
//		• gridgraph — islands (connected components) and minimal bridges
//		              (0-1 BFS) over a Grid[T] with 4- or 8-connectivity
//
// Quick example:
//
//	g := grid.MustNew(3, 2, func() int { return 0 })
//	g.Set(grid.NewCoordinate(1, 1), 7)
//	for c, v := range g.Neighbors(grid.NewCoordinate(0, 0)) {
//		fmt.Println(c, v) // 1x0 0, 0x1 0, 1x1 7
//	}
//
//	go get github.com/katalvlaran/grid2d
package grid2d

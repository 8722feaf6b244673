// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/grid2d/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous “islands” of non-zero cells in a 2D grid.
// Scenario:
//
//   - Grid values: 0 = water, 1,2 = different land IDs
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect two islands.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGridGraph_ConnectedComponents() {
	rows := [][]int{
		{1, 1, 0, 0},
		{1, 0, 0, 2},
		{0, 0, 2, 2},
	}
	gg, _ := gridgraph.From2D(rows, gridgraph.AtLeast(1), gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d: %v\n", i, comp)
	}

	// Output:
	// components: 2
	// component 0: [0x0 1x0 0x1]
	// component 1: [3x1 3x2 2x2]
}

////////////////////////////////////////////////////////////////////////////////
// Example: ExpandIsland
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ExpandIsland demonstrates computing the minimal
// water‐cell conversions to connect two islands in the grid.
// With Conn8 the bridge may run diagonally and gets cheaper.
//
// Complexity: O(W·H) on average, Memory: O(W·H)
func ExampleGridGraph_ExpandIsland() {
	rows := [][]int{
		{1, 1, 0, 0},
		{1, 0, 0, 2},
		{0, 0, 2, 2},
	}
	for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
		gg, _ := gridgraph.From2D(rows, gridgraph.AtLeast(1), conn)
		path, cost, _ := gg.ExpandIsland(0, 1)
		fmt.Printf("convert %d water cells, path of %d cells\n", cost, len(path))
	}

	// Output:
	// convert 2 water cells, path of 4 cells
	// convert 1 water cells, path of 3 cells
}

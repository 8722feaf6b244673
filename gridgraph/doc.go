// Package gridgraph treats a grid.Grid[T] as a graph, enabling component
// analysis and minimal-cost “island” expansions.
//
// What:
//
//   - GridGraph wraps a grid.Grid[T] with a land predicate.
//   - Identifies connected components (“islands”) of cells for which the
//     predicate holds.
//   - Computes minimal conversions (0-1 BFS) to connect two islands.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Resource planning: connect facilities with minimal upgrades.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (Moore neighborhood).
//
// Errors:
//
//   - ErrNilGrid, ErrNilPredicate: missing constructor input.
//   - ErrEmptyGrid: input rows are empty.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph

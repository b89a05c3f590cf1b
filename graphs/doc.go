// Package graphs solves graph puzzles: flood fill and multi-source BFS on grids,
// topological ordering of course prerequisites, and Dijkstra-style shortest
// paths (network delay, swimming in rising water).
//
// Grid puzzles share Grid, a validated rectangular view with 4- or
// 8-connectivity. Cells are addressed (row, col) and flattened row-major.
//
// Complexity:
//
//	NumIslands, OrangesRotting, ShortestPathBinaryMatrix  O(R·C)
//	CanFinish, FindOrder                                 O(V + E)
//	NetworkDelayTime                                     O((V + E) log V)
//	SwimInWater                                          O(N² log N)
//
// Errors (sentinel):
//
//   - ErrEmptyGrid       grid has no rows or no columns.
//   - ErrNonRectangular  grid rows differ in length.
//   - ErrCycleDetected   the prerequisite graph is not a DAG.
//   - ErrBadVertex       an edge or source names a vertex outside the graph.
package graphs

// Package gridgraph treats a 2D grid of occupied/empty cells as a graph and
// erodes it: cells with too few occupied neighbours are removed, pass after
// pass, until the grid is stable.
//
// What:
//
//   - GridGraph wraps a rectangular [][]bool grid (true = occupied).
//   - Neighbourhood is Conn8 (Moore, the default) or Conn4.
//   - EraseAccessible removes, in one pass, every occupied cell with fewer
//     than MinNeighbors occupied neighbours. Counts are taken from the grid
//     as it was before the pass.
//   - EraseToFixpoint repeats passes until one removes nothing.
//
// Why:
//
//   - Forklift access: a paper roll is reachable when fewer than four of the
//     eight rolls around it are present.
//   - Morphological erosion of masks and occupancy maps.
//
// Complexity:
//
//   - EraseAccessible: O(W×H×d), Memory: O(removed)   (d = 4 or 8).
//   - EraseToFixpoint: O(P×W×H×d), P = number of passes.
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.MinNeighbors: a cell survives a pass only with at least this
//     many occupied neighbours.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadThreshold: MinNeighbors is negative.
package gridgraph

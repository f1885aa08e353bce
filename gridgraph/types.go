// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/aoc2025.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// DefaultMinNeighbors is the number of occupied neighbours a cell needs to
// survive an erosion pass.
const DefaultMinNeighbors = 4

// GridOptions contains tunable parameters for grid erosion.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// MinNeighbors is the survival threshold of an erosion pass.
	MinNeighbors int
}

// DefaultGridOptions returns GridOptions with Conn=Conn8 and
// MinNeighbors=DefaultMinNeighbors.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:         Conn8,
		MinNeighbors: DefaultMinNeighbors,
	}
}

// GridGraph is a mutable occupancy grid. Width and Height define dimensions;
// Cells[y][x] is true while (x,y) is occupied. Erosion only ever turns cells
// from true to false.
type GridGraph struct {
	Width, Height   int
	Cells           [][]bool
	Conn            Connectivity
	MinNeighbors    int
	neighborOffsets [][2]int
}

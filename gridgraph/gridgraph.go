// Package gridgraph provides utilities to treat a 2D occupancy grid as a
// graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Occupied-neighbour counting clamped to the grid bounds
//   - Single-pass and fixpoint erosion
package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input, so erosion never touches the caller's slice.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadThreshold if opts.MinNeighbors < 0.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]bool, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.MinNeighbors < 0 {
		return nil, ErrBadThreshold
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Cells:           cells,
		Conn:            opts.Conn,
		MinNeighbors:    opts.MinNeighbors,
		neighborOffsets: offsets,
	}, nil
}

// From2D builds a GridGraph with the given connectivity and
// DefaultMinNeighbors.
func From2D(values [][]bool, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// OccupiedNeighbors counts occupied cells adjacent to (x,y), excluding
// (x,y) itself. Out-of-bounds neighbours count as empty.
// Complexity: O(d).
func (gg *GridGraph) OccupiedNeighbors(x, y int) int {
	n := 0
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) && gg.Cells[ny][nx] {
			n++
		}
	}

	return n
}

// Occupied returns the number of occupied cells.
// Complexity: O(W×H).
func (gg *GridGraph) Occupied() int {
	n := 0
	for _, row := range gg.Cells {
		for _, c := range row {
			if c {
				n++
			}
		}
	}

	return n
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

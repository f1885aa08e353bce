package gridgraph

// Accessible returns the row-major indices of every occupied cell with fewer
// than gg.MinNeighbors occupied neighbours, in scan order. The grid is not
// modified.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(k) for the k accessible cells.
func (gg *GridGraph) Accessible() []int {
	var out []int
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Cells[y][x] {
				continue
			}
			if gg.OccupiedNeighbors(x, y) < gg.MinNeighbors {
				out = append(out, gg.index(x, y))
			}
		}
	}

	return out
}

// EraseAccessible performs one erosion pass and returns the number of cells
// removed.
//
// Behavior:
//  1. Collect Accessible() against the current grid.
//  2. Clear all collected cells together, after the scan, so a removal in
//     this pass never changes another cell's count in the same pass.
//
// Time:   O(W·H·d).
// Memory: O(k) for the k removed cells.
func (gg *GridGraph) EraseAccessible() int {
	accessible := gg.Accessible()
	for _, i := range accessible {
		x, y := gg.Coordinate(i)
		gg.Cells[y][x] = false
	}

	return len(accessible)
}

// EraseToFixpoint runs EraseAccessible until a pass removes nothing and
// returns the total number of removed cells.
//
// Time: O(P·W·H·d) for P passes; P ≤ number of occupied cells + 1.
func (gg *GridGraph) EraseToFixpoint() int {
	total := 0
	for {
		removed := gg.EraseAccessible()
		if removed == 0 {
			return total
		}
		total += removed
	}
}

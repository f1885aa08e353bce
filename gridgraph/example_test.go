// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: EraseAccessible
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_EraseAccessible removes the loose rolls around a dense
// 3×3 block in a single pass.
//
// Scenario:
//
//	@ . . . .
//	. @ @ @ .
//	. @ @ @ .
//	. @ @ @ .
//
//   - Conn8, MinNeighbors = 4.
//   - (0,0) has one neighbour; three block corners have three and go.
//   - (1,1) keeps four thanks to (0,0), which only disappears in this pass.
//
// Complexity: O(W·H·8), Memory: O(removed)
func ExampleGridGraph_EraseAccessible() {
	grid := [][]bool{
		{true, false, false, false, false},
		{false, true, true, true, false},
		{false, true, true, true, false},
		{false, true, true, true, false},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn8)

	fmt.Println("removed:", gg.EraseAccessible())
	for _, row := range gg.Cells {
		for _, c := range row {
			if c {
				fmt.Print("@")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}

	// Output:
	// removed: 4
	// .....
	// .@@..
	// .@@@.
	// ..@..
}

////////////////////////////////////////////////////////////////////////////////
// Example: EraseToFixpoint
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_EraseToFixpoint erodes a plus shape completely: no cell
// ever has four occupied neighbours except the centre, which loses them in
// the first pass.
func ExampleGridGraph_EraseToFixpoint() {
	grid := [][]bool{
		{false, true, false},
		{true, true, true},
		{false, true, false},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn8)

	fmt.Println("removed:", gg.EraseToFixpoint(), "left:", gg.Occupied())

	// Output:
	// removed: 5 left: 0
}

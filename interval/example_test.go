package interval_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/interval"
)

// ExampleBuild merges overlapping ingredient-ID ranges and probes them.
//
// Ranges 10-14, 16-20 and 12-18 overlap into 10-20; 3-5 stays apart.
func ExampleBuild() {
	set := interval.Build([]interval.Range{{3, 5}, {10, 14}, {16, 20}, {12, 18}})
	fmt.Println("ranges:", set.Ranges())
	for _, id := range []int64{1, 5, 8, 11, 17, 32} {
		fmt.Printf("%d fresh=%v\n", id, set.Contains(id))
	}
	fmt.Println("total:", set.TotalSize())

	// Output:
	// ranges: [3-5 10-20]
	// 1 fresh=false
	// 5 fresh=true
	// 8 fresh=false
	// 11 fresh=true
	// 17 fresh=true
	// 32 fresh=false
	// total: 14
}

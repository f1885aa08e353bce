package sillyid_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/interval"
	"github.com/katalvlaran/aoc2025/sillyid"
)

// ExampleSumRepeated contrasts doubled and repeated IDs in 95-115 and 998-1012.
func ExampleSumRepeated() {
	set := interval.Build([]interval.Range{{95, 115}, {998, 1012}})
	fmt.Println("doubled:", sillyid.SumDoubled(set))
	fmt.Println("repeated:", sillyid.SumRepeated(set))

	// Output:
	// doubled: 1109
	// repeated: 2219
}

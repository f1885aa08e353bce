package puzzle_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// ExampleCafeteria solves the ingredient example from a string.
func ExampleCafeteria() {
	in := "3-5\n10-14\n16-20\n12-18\n\n1\n5\n8\n11\n17\n32\n"
	a, err := puzzle.Cafeteria{}.Solve(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("fresh=%d total=%d\n", a.Part1, a.Part2)

	// Output:
	// fresh=3 total=14
}

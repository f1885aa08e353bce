package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/gridgraph"
)

// paperRolls is the 10×10 example warehouse ('@' = roll).
var paperRolls = []string{
	"..@@.@@@@.",
	"@@@.@.@.@@",
	"@@@@@.@.@@",
	"@.@@@@..@.",
	"@@.@@@@.@@",
	".@@@@@@@.@",
	".@.@.@.@@@",
	"@.@@@.@@@@",
	".@@@@@@@@.",
	"@.@.@@@.@.",
}

// toCells maps '@' to true and everything else to false.
func toCells(rows []string) [][]bool {
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x := range row {
			cells[y][x] = row[x] == '@'
		}
	}

	return cells
}

// render is the inverse of toCells.
func render(gg *gridgraph.GridGraph) []string {
	out := make([]string, gg.Height)
	for y, row := range gg.Cells {
		var b strings.Builder
		for _, c := range row {
			if c {
				b.WriteByte('@')
			} else {
				b.WriteByte('.')
			}
		}
		out[y] = b.String()
	}

	return out
}

// TestEraseAccessible_Example checks one pass over the example removes 13 rolls.
func TestEraseAccessible_Example(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(toCells(paperRolls), gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	before := gg.Occupied()
	assert.Equal(t, 13, gg.EraseAccessible())
	assert.Equal(t, before-13, gg.Occupied())
}

// TestEraseToFixpoint_Example checks repeated passes remove 43 rolls in total
// and that the result is stable.
func TestEraseToFixpoint_Example(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(toCells(paperRolls), gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	assert.Equal(t, 43, gg.EraseToFixpoint())
	assert.Zero(t, gg.EraseAccessible(), "fixpoint must be stable")
	assert.Empty(t, gg.Accessible())
}

// TestEraseAccessible_Snapshot ensures counts come from the pre-pass grid.
//
// Row "@@@@@" under Conn8 with MinNeighbors=2: both ends have one neighbour
// and go; the inner cells have two and stay, even though removing the ends
// would leave the next cells with one.
func TestEraseAccessible_Snapshot(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.MinNeighbors = 2
	gg, err := gridgraph.NewGridGraph(toCells([]string{"@@@@@"}), opts)
	require.NoError(t, err)

	assert.Equal(t, 2, gg.EraseAccessible())
	assert.Equal(t, []string{".@@@."}, render(gg))

	assert.Equal(t, 2, gg.EraseAccessible())
	assert.Equal(t, []string{"..@.."}, render(gg))
}

// TestEraseToFixpoint_Monotone checks occupied cells only ever disappear.
func TestEraseToFixpoint_Monotone(t *testing.T) {
	initial := toCells(paperRolls)
	gg, err := gridgraph.NewGridGraph(initial, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for gg.EraseAccessible() > 0 {
		for y := range gg.Cells {
			for x := range gg.Cells[y] {
				if gg.Cells[y][x] {
					assert.True(t, initial[y][x], "cell (%d,%d) appeared", x, y)
				}
			}
		}
	}
}

// TestEraseAccessible_DenseBlockSurvives checks a 5×5 block keeps its interior.
func TestEraseAccessible_DenseBlockSurvives(t *testing.T) {
	rows := []string{"@@@@@", "@@@@@", "@@@@@", "@@@@@", "@@@@@"}
	gg, err := gridgraph.NewGridGraph(toCells(rows), gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	// only the four corners have three neighbours
	assert.Equal(t, 4, gg.EraseAccessible())
	assert.Equal(t, 21, gg.Occupied())
}

// TestEraseAccessible_Empty checks an all-empty grid removes nothing.
func TestEraseAccessible_Empty(t *testing.T) {
	gg, err := gridgraph.From2D(toCells([]string{"...", "..."}), gridgraph.Conn8)
	require.NoError(t, err)

	assert.Zero(t, gg.EraseAccessible())
	assert.Zero(t, gg.EraseToFixpoint())
}

// SPDX-License-Identifier: MIT

package puzzle

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/aoc2025/dial"
	"github.com/katalvlaran/aoc2025/gridgraph"
	"github.com/katalvlaran/aoc2025/interval"
	"github.com/katalvlaran/aoc2025/lineparse"
	"github.com/katalvlaran/aoc2025/maxdigits"
	"github.com/katalvlaran/aoc2025/sillyid"
)

// Battery counts used by Lobby.
const (
	ShortBank = 2
	LongBank  = 12
)

// SecretEntrance counts how often the safe dial reaches 0.
type SecretEntrance struct{}

func (SecretEntrance) Day() int      { return 1 }
func (SecretEntrance) Title() string { return "Secret Entrance" }

// Solve answers part 1 with rotations that stop on 0 and part 2 with every
// click that passes 0.
func (SecretEntrance) Solve(r io.Reader) (Answer, error) {
	deltas, err := lineparse.Deltas(r)
	if err != nil {
		return Answer{}, err
	}

	return Answer{
		Part1: int64(dial.CountZeroStops(deltas)),
		Part2: int64(dial.CountZeroCrossings(deltas)),
	}, nil
}

// GiftShop sums invalid product IDs inside the listed ranges.
type GiftShop struct{}

func (GiftShop) Day() int      { return 2 }
func (GiftShop) Title() string { return "Gift Shop" }

// Solve answers part 1 with doubled IDs and part 2 with repeated IDs.
func (GiftShop) Solve(r io.Reader) (Answer, error) {
	ranges, err := lineparse.RangeList(r)
	if err != nil {
		return Answer{}, err
	}
	set := interval.Build(ranges)

	return Answer{
		Part1: sillyid.SumDoubled(set),
		Part2: sillyid.SumRepeated(set),
	}, nil
}

// Lobby sums the best joltage of every battery bank.
type Lobby struct{}

func (Lobby) Day() int      { return 3 }
func (Lobby) Title() string { return "Lobby" }

// Solve answers part 1 with ShortBank batteries per bank and part 2 with
// LongBank. Banks too short for a selection contribute nothing.
func (Lobby) Solve(r io.Reader) (Answer, error) {
	banks, err := lineparse.Digits(r)
	if err != nil {
		return Answer{}, err
	}

	var a Answer
	for _, bank := range banks {
		if v, ok := maxdigits.Select(bank, ShortBank); ok {
			a.Part1 += v
		}
		if v, ok := maxdigits.Select(bank, LongBank); ok {
			a.Part2 += v
		}
	}

	return a, nil
}

// PrintingDepartment counts paper rolls a forklift can reach.
type PrintingDepartment struct{}

func (PrintingDepartment) Day() int      { return 4 }
func (PrintingDepartment) Title() string { return "Printing Department" }

// Solve answers part 1 with the rolls removed by one pass and part 2 with
// the rolls removed once passes repeat to a fixpoint.
func (PrintingDepartment) Solve(r io.Reader) (Answer, error) {
	cells, err := lineparse.Grid(r)
	if err != nil {
		return Answer{}, err
	}
	gg, err := gridgraph.NewGridGraph(cells, gridgraph.DefaultGridOptions())
	if errors.Is(err, gridgraph.ErrEmptyGrid) {
		return Answer{}, fmt.Errorf("%w: %w", ErrEmptyInput, err)
	}
	if err != nil {
		return Answer{}, err
	}

	first := gg.EraseAccessible()
	rest := gg.EraseToFixpoint()

	return Answer{
		Part1: int64(first),
		Part2: int64(first + rest),
	}, nil
}

// Cafeteria checks ingredient IDs against fresh ranges.
type Cafeteria struct{}

func (Cafeteria) Day() int      { return 5 }
func (Cafeteria) Title() string { return "Cafeteria" }

// Solve answers part 1 with the number of listed IDs that are fresh and
// part 2 with the number of IDs the ranges cover.
func (Cafeteria) Solve(r io.Reader) (Answer, error) {
	ranges, ids, err := lineparse.Inventory(r)
	if err != nil {
		return Answer{}, err
	}
	fresh := interval.Build(ranges)

	var a Answer
	for _, id := range ids {
		if fresh.Contains(id) {
			a.Part1++
		}
	}
	a.Part2 = fresh.TotalSize()

	return a, nil
}

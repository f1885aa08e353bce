// SPDX-License-Identifier: MIT

package lineparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/interval"
	"github.com/katalvlaran/aoc2025/maxdigits"
)

// ErrRead wraps every error returned by the underlying reader.
var ErrRead = errors.New("lineparse: read input")

// Occupied is the grid symbol for an occupied cell.
const Occupied = '@'

// ForLines calls onLine for each line of r, without the line terminator.
// Returning false from onLine stops the scan early.
func ForLines(r io.Reader, onLine func(line string) bool) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for s.Scan() {
		if !onLine(s.Text()) {
			break
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}

	return nil
}

// ParseDelta parses "L<n>" as -n and "R<n>" as +n.
func ParseDelta(line string) (int, bool) {
	line = strings.TrimSpace(line)
	if len(line) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(line[1:])
	if err != nil {
		return 0, false
	}
	switch line[0] {
	case 'L':
		return -n, true
	case 'R':
		return n, true
	default:
		return 0, false
	}
}

// Deltas parses one rotation per line.
func Deltas(r io.Reader) ([]int, error) {
	var out []int
	err := ForLines(r, func(line string) bool {
		if d, ok := ParseDelta(line); ok {
			out = append(out, d)
		}

		return true
	})

	return out, err
}

// RangeList parses comma-separated "start-end" pairs. Line breaks and
// spaces around pairs are ignored.
func RangeList(r io.Reader) ([]interval.Range, error) {
	var out []interval.Range
	err := ForLines(r, func(line string) bool {
		for _, field := range strings.Split(line, ",") {
			if rg, ok := interval.ParseRange(field); ok {
				out = append(out, rg)
			}
		}

		return true
	})

	return out, err
}

// Inventory parses "start-end" lines up to the first empty line, then one
// integer per line.
func Inventory(r io.Reader) (ranges []interval.Range, ids []int64, err error) {
	inRanges := true
	err = ForLines(r, func(line string) bool {
		if inRanges {
			if strings.TrimSpace(line) == "" {
				inRanges = false
			} else if rg, ok := interval.ParseRange(line); ok {
				ranges = append(ranges, rg)
			}

			return true
		}
		if v, perr := strconv.ParseInt(strings.TrimSpace(line), 10, 64); perr == nil {
			ids = append(ids, v)
		}

		return true
	})

	return ranges, ids, err
}

// Digits returns the digits of every line, in order.
func Digits(r io.Reader) ([][]uint8, error) {
	var out [][]uint8
	err := ForLines(r, func(line string) bool {
		out = append(out, maxdigits.FromString(line))

		return true
	})

	return out, err
}

// Grid returns one row per non-empty line; a cell is true when its byte is
// Occupied.
func Grid(r io.Reader) ([][]bool, error) {
	var out [][]bool
	err := ForLines(r, func(line string) bool {
		if line == "" {
			return true
		}
		row := make([]bool, len(line))
		for i := 0; i < len(line); i++ {
			row[i] = line[i] == Occupied
		}
		out = append(out, row)

		return true
	})

	return out, err
}

// Integers parses one base-10 integer per line.
func Integers(r io.Reader) ([]int64, error) {
	var out []int64
	err := ForLines(r, func(line string) bool {
		if v, perr := strconv.ParseInt(strings.TrimSpace(line), 10, 64); perr == nil {
			out = append(out, v)
		}

		return true
	})

	return out, err
}

// SPDX-License-Identifier: MIT

package interval

import (
	"slices"
)

// Set is a sorted sequence of disjoint, non-adjacent ranges.
// The zero value is an empty set.
type Set struct {
	ranges []Range
}

// Build merges rs into a Set. The input slice is not modified.
//
// Behavior:
//  1. Drop empty ranges (Start > End) and sort a copy by (Start, End).
//  2. Fold left to right: a range that overlaps or touches the last accepted
//     range (last.End+1 >= next.Start) extends it to max(last.End, next.End);
//     any other range is appended.
//
// Complexity: O(n log n) time, O(n) memory.
func Build(rs []Range) *Set {
	sorted := make([]Range, 0, len(rs))
	for _, r := range rs {
		if r.Start <= r.End {
			sorted = append(sorted, r)
		}
	}
	if len(sorted) == 0 {
		return &Set{}
	}
	slices.SortFunc(sorted, Range.Compare)

	merged := sorted[:1]
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		// sorted by Start, so only the last accepted range can absorb r
		if last.End+1 >= r.Start {
			last.End = max(last.End, r.End)
			continue
		}
		merged = append(merged, r)
	}

	return &Set{ranges: slices.Clip(merged)}
}

// Contains reports whether v is covered by s.
//
// The search is on Start. An exact hit is covered by construction; otherwise
// v can only fall inside the range just before the insertion point. Both
// neighbours are checked either way.
//
// Complexity: O(log m).
func (s *Set) Contains(v int64) bool {
	i, found := slices.BinarySearchFunc(s.ranges, v, func(r Range, t int64) int {
		switch {
		case r.Start < t:
			return -1
		case r.Start > t:
			return 1
		default:
			return 0
		}
	})
	if found {
		if s.ranges[i].Contains(v) {
			return true
		}

		return i > 0 && s.ranges[i-1].Contains(v)
	}
	if i < len(s.ranges) && s.ranges[i].Contains(v) {
		return true
	}

	return i > 0 && s.ranges[i-1].Contains(v)
}

// TotalSize returns the number of distinct integers covered by s.
func (s *Set) TotalSize() int64 {
	var total int64
	for _, r := range s.ranges {
		total += r.Size()
	}

	return total
}

// Len returns the number of disjoint ranges in s.
func (s *Set) Len() int {
	return len(s.ranges)
}

// Ranges returns a copy of the merged ranges in ascending order.
func (s *Set) Ranges() []Range {
	return slices.Clone(s.ranges)
}

// Max returns the largest covered value, or false if s is empty.
func (s *Set) Max() (int64, bool) {
	if len(s.ranges) == 0 {
		return 0, false
	}

	return s.ranges[len(s.ranges)-1].End, true
}

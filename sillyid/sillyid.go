// SPDX-License-Identifier: MIT

package sillyid

import (
	"math"

	"github.com/katalvlaran/aoc2025/interval"
)

// Doubled calls yield for every doubled ID (a block written exactly twice)
// in ascending order, up to and including limit.
func Doubled(limit int64, yield func(id int64)) {
	for block := int64(1); ; block++ {
		id, ok := appendBlock(block, block)
		if !ok || id > limit {
			return
		}
		yield(id)
	}
}

// Repeated calls yield for every repeated ID (a block written two or more
// times) up to and including limit. Order is by block, then repetitions; an
// ID reachable from several blocks is yielded once per block.
func Repeated(limit int64, yield func(id int64)) {
	for block := int64(1); ; block++ {
		id, ok := appendBlock(block, block)
		if !ok || id > limit {
			return
		}
		for ok && id <= limit {
			yield(id)
			id, ok = appendBlock(id, block)
		}
	}
}

// SumDoubled sums the doubled IDs covered by set.
func SumDoubled(set *interval.Set) int64 {
	limit, ok := set.Max()
	if !ok {
		return 0
	}
	var sum int64
	Doubled(limit, func(id int64) {
		if set.Contains(id) {
			sum += id
		}
	})

	return sum
}

// SumRepeated sums the distinct repeated IDs covered by set.
func SumRepeated(set *interval.Set) int64 {
	limit, ok := set.Max()
	if !ok {
		return 0
	}
	seen := make(map[int64]struct{})
	var sum int64
	Repeated(limit, func(id int64) {
		if _, dup := seen[id]; dup || !set.Contains(id) {
			return
		}
		seen[id] = struct{}{}
		sum += id
	})

	return sum
}

// appendBlock returns the decimal concatenation prefix·block, or false on
// int64 overflow.
func appendBlock(prefix, block int64) (int64, bool) {
	shift := int64(10)
	for shift <= block {
		shift *= 10
	}
	if prefix > (math.MaxInt64-block)/shift {
		return 0, false
	}

	return prefix*shift + block, true
}

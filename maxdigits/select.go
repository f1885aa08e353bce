// SPDX-License-Identifier: MIT

package maxdigits

// MaxK is the largest k for which Select can return a result; 19 decimal
// digits may overflow int64.
const MaxK = 18

// Select returns the lexicographically largest k-digit subsequence of
// digits, read as a base-10 number.
//
// It reports false when k is negative, k > len(digits), or k > MaxK; callers
// summing over many sequences should treat that as contributing nothing.
// Select(d, 0) is (0, true).
//
// Every element of digits must be in 0..9.
func Select(digits []uint8, k int) (int64, bool) {
	if k < 0 || k > len(digits) || k > MaxK {
		return 0, false
	}

	return selectDigits(digits, k), true
}

// selectDigits assumes 0 <= k <= len(digits).
func selectDigits(digits []uint8, k int) int64 {
	switch k {
	case 0:
		return 0
	case 1:
		var best uint8
		for _, d := range digits {
			best = max(best, d)
		}

		return int64(best)
	}

	window := digits[:len(digits)-(k-1)]
	i := earliestMax(window)
	head := int64(digits[i]) * pow10(k-1)

	return head + selectDigits(digits[i+1:], k-1)
}

// earliestMax returns the index of the largest digit in window, preferring
// the smallest index on ties. window must be non-empty.
func earliestMax(window []uint8) int {
	// key orders by value, then by -index
	type key struct {
		value uint8
		index int
	}
	less := func(a, b key) bool {
		if a.value != b.value {
			return a.value < b.value
		}

		return a.index > b.index
	}

	best := key{value: window[0], index: 0}
	for i := 1; i < len(window); i++ {
		if cand := (key{value: window[i], index: i}); less(best, cand) {
			best = cand
		}
	}

	return best.index
}

func pow10(n int) int64 {
	p := int64(1)
	for ; n > 0; n-- {
		p *= 10
	}

	return p
}

// FromString returns the decimal digits of s in order; every other rune is
// ignored.
func FromString(s string) []uint8 {
	out := make([]uint8, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			out = append(out, c-'0')
		}
	}

	return out
}

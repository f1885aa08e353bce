// SPDX-License-Identifier: MIT

package interval

import (
	"cmp"
	"strconv"
	"strings"
)

// Range is a closed interval [Start, End]. A Range with Start > End is empty.
type Range struct {
	Start, End int64
}

// Contains reports whether v lies within [r.Start, r.End].
func (r Range) Contains(v int64) bool {
	return r.Start <= v && v <= r.End
}

// Size returns the number of integers covered by r, or 0 if r is empty.
func (r Range) Size() int64 {
	if r.Start > r.End {
		return 0
	}

	return r.End - r.Start + 1
}

// Compare orders ranges by Start, then by End.
func (r Range) Compare(o Range) int {
	if c := cmp.Compare(r.Start, o.Start); c != 0 {
		return c
	}

	return cmp.Compare(r.End, o.End)
}

// String renders r as "start-end", the form ParseRange accepts.
func (r Range) String() string {
	return strconv.FormatInt(r.Start, 10) + "-" + strconv.FormatInt(r.End, 10)
}

// ParseRange parses "start-end" (surrounding whitespace allowed).
// It returns false when either bound is missing or not a decimal integer.
func ParseRange(s string) (Range, bool) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, false
	}
	start, err := strconv.ParseInt(lo, 10, 64)
	if err != nil {
		return Range{}, false
	}
	end, err := strconv.ParseInt(hi, 10, 64)
	if err != nil {
		return Range{}, false
	}

	return Range{Start: start, End: end}, true
}

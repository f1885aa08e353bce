// SPDX-License-Identifier: MIT

// Package lineparse turns line-oriented puzzle input into typed values.
//
// Every parser reads its io.Reader once, top to bottom. Lines that do not
// match the expected grammar are skipped without being reported; only a
// failure of the reader itself is returned as an error (wrapping ErrRead).
//
// Grammars:
//
//	Deltas     L68 / R48, one per line        → []int (L negative)
//	RangeList  11-22,95-115,...               → []interval.Range
//	Inventory  3-5 ... <empty line> 17 ...    → ranges, then []int64
//	Digits     987654321111111                → [][]uint8 (non-digits ignored)
//	Grid       ..@@.@@@@.                      → [][]bool ('@' = true)
//	Integers   17, one per line               → []int64
package lineparse

// SPDX-License-Identifier: MIT

// Package interval merges closed integer ranges into a minimal sorted set of
// disjoint ranges and answers membership queries against it.
//
// What:
//
//   - Range is a closed, inclusive [Start, End] pair of int64 values.
//   - Set is the merged cover of any number of ranges: sorted by Start,
//     pairwise disjoint and never adjacent (a.End+1 < b.Start).
//   - Contains answers "is v covered?" with a binary search on Start.
//   - TotalSize counts the distinct integers covered by the union.
//
// Why:
//
//   - Freshness checks against overlapping ingredient-ID ranges.
//   - Membership tests for ID enumeration (see package sillyid).
//
// Complexity:
//
//   - Build:     O(n log n) time, O(n) memory.
//   - Contains:  O(log m), m = number of merged ranges.
//   - TotalSize: O(m).
//
// A Set is built once and read-only afterwards; Build over the ranges of an
// existing Set returns an equal Set.
package interval

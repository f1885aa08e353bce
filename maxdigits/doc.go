// SPDX-License-Identifier: MIT

// Package maxdigits selects the largest k-digit number that can be formed
// from a digit sequence by deleting digits while keeping their order.
//
// Algorithm:
//
//	The first selected digit must leave at least k-1 digits after it, so it
//	is chosen from the window digits[:len-(k-1)]. Among the window, the
//	largest digit wins, and among equal digits the earliest one wins: it
//	leaves the longest suffix for the remaining k-1 choices. The rest of the
//	number is the same selection over the suffix with k-1.
//
// Complexity: O(n·k) time, O(k) stack.
//
// Typical use: the "joltage" of a battery bank, i.e. the largest number
// readable from k of its batteries in order.
package maxdigits

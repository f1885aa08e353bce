// SPDX-License-Identifier: MIT

// Package sillyid finds product IDs made of one digit block written several
// times over: 55, 6464, 123123 (doubled) or 111, 121212, 824824824
// (repeated).
//
// Candidates are generated, not searched for: for every block b the package
// writes b, bb, bbb, ... until the value passes the largest covered ID, and
// keeps those an interval.Set contains. A repeated ID reachable from more
// than one block (1111 = 11·11 = 1·1·1·1) is counted once.
package sillyid

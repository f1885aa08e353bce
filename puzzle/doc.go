// SPDX-License-Identifier: MIT

// Package puzzle wires the parsers and algorithms of this module into one
// solver per puzzle day and runs them against input files.
//
// Each Solver parses its input once and answers both parts from the parsed
// structure:
//
//	Day 1  dial        rotations stopping on 0 / passing 0         (package dial)
//	Day 2  gift shop   doubled / repeated IDs inside ranges        (package sillyid)
//	Day 3  lobby       largest 2- / 12-battery joltage per bank    (package maxdigits)
//	Day 4  printing    rolls removed by one pass / to a fixpoint   (package gridgraph)
//	Day 5  cafeteria   fresh ingredient IDs / total fresh IDs      (package interval)
//
// Runner resolves <InputDir>/dayNN.txt, times each solve and logs through
// log/slog. A missing or unreadable input is an error; malformed lines
// inside an input are not.
package puzzle

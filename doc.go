// Package aoc2025 collects small, independent puzzle solvers, each a pure
// pipeline: read lines → parse → fold → print a number.
//
// 🚀 What is inside?
//
//	Reusable algorithm packages, each usable on its own:
//		• interval  — merge closed ranges into a disjoint set, O(log n) membership
//		• maxdigits — largest k-digit subsequence of a digit string
//		• gridgraph — Moore-neighbourhood erosion of an occupancy grid
//		• dial      — zero stops and zero crossings on a circular 0..99 dial
//		• sillyid   — IDs built from one repeated digit block
//		• lineparse — the line grammars the puzzles use
//
//	And the glue:
//		• puzzle    — one Solver per day, a registry and a file Runner
//		• config    — YAML / .env / AOC_* settings
//		• cmd/aoc   — the command line
//
// Quick start:
//
//	aoc run              # every day, reading input/dayNN.txt
//	aoc run 4 --format table
//
// Each day parses its input once and answers both parts from memory.
package aoc2025

// SPDX-License-Identifier: MIT

package puzzle

import (
	"errors"
	"io"
	"time"
)

var (
	// ErrUnknownDay indicates no solver is registered for the requested day.
	ErrUnknownDay = errors.New("puzzle: unknown day")
	// ErrEmptyInput indicates an input that yielded nothing to solve.
	ErrEmptyInput = errors.New("puzzle: input is empty")
)

// Answer holds the two scalar results of a day.
type Answer struct {
	Part1 int64
	Part2 int64
}

// Solver parses one day's input and answers both parts.
type Solver interface {
	// Day returns the puzzle day, starting at 1.
	Day() int
	// Title is a short human-readable name.
	Title() string
	// Solve reads r once and returns both answers.
	Solve(r io.Reader) (Answer, error)
}

// Result is the outcome of running one Solver against its input file.
type Result struct {
	Day     int
	Title   string
	Path    string
	Answer  Answer
	Elapsed time.Duration
}

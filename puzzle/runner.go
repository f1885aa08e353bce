// SPDX-License-Identifier: MIT

package puzzle

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// InputPath returns <dir>/dayNN.txt.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}

// Runner solves days against input files in InputDir.
type Runner struct {
	InputDir string
	Logger   *slog.Logger
	now      func() time.Time
}

// NewRunner returns a Runner reading from inputDir. A nil logger discards
// log output.
func NewRunner(inputDir string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{
		InputDir: inputDir,
		Logger:   logger,
		now:      time.Now,
	}
}

// Run solves the given days in order, or every registered day when none are
// given. It stops at the first failure and returns the results gathered so
// far together with the error. Unknown days are rejected before anything
// runs.
func (r *Runner) Run(ctx context.Context, days ...int) ([]Result, error) {
	if len(days) == 0 {
		days = Days()
	}
	solvers := make([]Solver, 0, len(days))
	for _, d := range days {
		s, err := Lookup(d)
		if err != nil {
			return nil, err
		}
		solvers = append(solvers, s)
	}

	results := make([]Result, 0, len(solvers))
	for _, s := range solvers {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.RunSolver(s)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	return results, nil
}

// RunSolver opens the input of s, solves it and reports the elapsed time.
func (r *Runner) RunSolver(s Solver) (Result, error) {
	path := InputPath(r.InputDir, s.Day())
	log := r.Logger.With(slog.Int("day", s.Day()), slog.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		log.Error("open input failed", slog.Any("error", err))

		return Result{}, fmt.Errorf("day %d: open input: %w", s.Day(), err)
	}
	defer f.Close()

	start := r.now()
	answer, err := s.Solve(f)
	elapsed := r.now().Sub(start)
	if err != nil {
		log.Error("solve failed", slog.Any("error", err))

		return Result{}, fmt.Errorf("day %d: %w", s.Day(), err)
	}
	log.Debug("solved",
		slog.Int64("part1", answer.Part1),
		slog.Int64("part2", answer.Part2),
		slog.Duration("elapsed", elapsed),
	)

	return Result{
		Day:     s.Day(),
		Title:   s.Title(),
		Path:    path,
		Answer:  answer,
		Elapsed: elapsed,
	}, nil
}

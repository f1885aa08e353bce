// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2025/config"
	"github.com/katalvlaran/aoc2025/puzzle"
)

type runFlags struct {
	inputDir string
	format   string
}

func newRunCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days (all days when none are given)",
		Example: `  aoc run
  aoc run 1 5 --input-dir ./inputs
  aoc run 3 --format table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDays(cmd, g, f, args)
		},
	}

	cmd.Flags().StringVar(&f.inputDir, "input-dir", "", "directory holding dayNN.txt files (default: input)")
	cmd.Flags().StringVar(&f.format, "format", "", "output format: plain or table")

	return cmd
}

func runDays(cmd *cobra.Command, g *globalFlags, f *runFlags, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	if f.inputDir != "" {
		cfg.InputDir = f.inputDir
	}
	if f.format != "" {
		cfg.Format = f.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger.Info("running", "input_dir", cfg.InputDir, "days", days)

	runner := puzzle.NewRunner(cfg.InputDir, logger)
	results, runErr := runner.Run(cmd.Context(), days...)

	out := cmd.OutOrStdout()
	if cfg.Format == config.FormatTable {
		fmt.Fprint(out, renderTable(results))
	} else {
		fmt.Fprint(out, renderPlain(results))
	}

	return runErr
}

// parseDays converts positional arguments to day numbers.
func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, a := range args {
		d, err := strconv.Atoi(a)
		if err != nil || d < 1 {
			return nil, fmt.Errorf("invalid day %q", a)
		}
		days = append(days, d)
	}

	return days, nil
}

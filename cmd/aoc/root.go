// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2025/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	envFile    string
	logLevel   string
	logFormat  string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2025 solutions",
		Long: `aoc solves the implemented puzzle days against input files named
dayNN.txt and prints both answers of each day.

Settings come from aoc.yaml, a .env file, AOC_* environment variables and
flags, with later sources taking precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if g.noColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "path to a YAML config file (default: ./aoc.yaml if present)")
	cmd.PersistentFlags().StringVar(&g.envFile, "env-file", "", "path to a dotenv file (default: ./.env if present)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "log format: text or json")
	cmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newRunCmd(g))
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads configuration and applies the global flag overrides.
func (g *globalFlags) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.configPath, g.envFile)
	if err != nil {
		return nil, err
	}
	if g.logLevel != "" {
		cfg.Logging.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Logging.Format = g.logFormat
	}

	return cfg, nil
}

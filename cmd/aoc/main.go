// SPDX-License-Identifier: MIT

// Package main provides the aoc command, which prints the answers of every
// implemented puzzle day.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

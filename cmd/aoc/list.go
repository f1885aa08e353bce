// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2025/puzzle"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the implemented days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range puzzle.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%02d  %s\n", s.Day(), s.Title())
			}

			return nil
		},
	}
}

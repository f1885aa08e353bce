// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// renderPlain prints two lines per day, e.g. "Day 01, Part 1: 3".
func renderPlain(results []puzzle.Result) string {
	label := color.New(color.FgCyan, color.Bold).SprintfFunc()

	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "%s %d\n", label("Day %02d, Part 1:", r.Day), r.Answer.Part1)
		fmt.Fprintf(&b, "%s %d\n", label("Day %02d, Part 2:", r.Day), r.Answer.Part2)
	}

	return b.String()
}

// renderTable prints one row per day with grouped digits and timings.
func renderTable(results []puzzle.Result) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Day", "Title", "Part 1", "Part 2", "Elapsed"})

	var total time.Duration
	for _, r := range results {
		total += r.Elapsed
		tbl.AppendRow(table.Row{
			fmt.Sprintf("%02d", r.Day),
			r.Title,
			humanize.Comma(r.Answer.Part1),
			humanize.Comma(r.Answer.Part2),
			r.Elapsed.Round(time.Microsecond).String(),
		})
	}
	tbl.AppendFooter(table.Row{"", fmt.Sprintf("%d days", len(results)), "", "", total.Round(time.Microsecond).String()})

	return tbl.Render() + "\n"
}

// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/aoc2025/config"
)

// newLogger builds a text or JSON slog logger writing to w.
func newLogger(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.Format == config.LogFormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With(slog.String("service", "aoc")), nil
}

package puzzle_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// writeInputs stores the example inputs as dayNN.txt in a temp dir.
func writeInputs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	inputs := map[int]string{
		1: dialInput,
		2: giftShopInput,
		3: lobbyInput,
		4: printingInput,
		5: cafeteriaInput,
	}
	for day, in := range inputs {
		require.NoError(t, os.WriteFile(puzzle.InputPath(dir, day), []byte(in), 0o600))
	}

	return dir
}

// TestInputPath zero-pads the day.
func TestInputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("input", "day03.txt"), puzzle.InputPath("input", 3))
}

// TestRunner_AllDays solves every example from disk.
func TestRunner_AllDays(t *testing.T) {
	r := puzzle.NewRunner(writeInputs(t), nil)

	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 5)

	want := []puzzle.Answer{
		{Part1: 3, Part2: 6},
		{Part1: 1227775554, Part2: 4174379265},
		{Part1: 357, Part2: 3121910778619},
		{Part1: 13, Part2: 43},
		{Part1: 3, Part2: 14},
	}
	for i, res := range results {
		assert.Equal(t, i+1, res.Day)
		assert.Equal(t, want[i], res.Answer, "day %d", res.Day)
		assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
	}
}

// TestRunner_SelectedDays runs only what was asked, in the given order.
func TestRunner_SelectedDays(t *testing.T) {
	r := puzzle.NewRunner(writeInputs(t), nil)

	results, err := r.Run(context.Background(), 5, 1)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 5, results[0].Day)
	assert.Equal(t, 1, results[1].Day)
}

// TestRunner_MissingInput fails with the OS error and logs it.
func TestRunner_MissingInput(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := puzzle.NewRunner(t.TempDir(), logger)

	_, err := r.Run(context.Background(), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, logs.String(), "open input failed")
	assert.Contains(t, logs.String(), "day=2")
}

// TestRunner_UnknownDay rejects the request before reading anything.
func TestRunner_UnknownDay(t *testing.T) {
	r := puzzle.NewRunner(t.TempDir(), nil)

	results, err := r.Run(context.Background(), 1, 42)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
	assert.Empty(t, results)
}

// TestRunner_Cancelled stops before the first solve.
func TestRunner_Cancelled(t *testing.T) {
	r := puzzle.NewRunner(writeInputs(t), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

// TestRunner_PartialResults keeps earlier results when a later day fails.
func TestRunner_PartialResults(t *testing.T) {
	dir := writeInputs(t)
	require.NoError(t, os.Remove(puzzle.InputPath(dir, 3)))
	r := puzzle.NewRunner(dir, nil)

	results, err := r.Run(context.Background())
	require.Error(t, err)
	assert.Len(t, results, 2)
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package timer

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock returns a cpuTime stub that advances by one second per
// read, so every measured delta is exactly 1.0.
func fakeClock() func() (float64, error) {
	var now float64
	return func() (float64, error) {
		now += 1.0
		return now, nil
	}
}

func newTestTimer(t *testing.T) *Timer {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test commands require a POSIX shell")
	}
	tm := New(nil)
	tm.cpuTime = fakeClock()
	return tm
}

func TestMeasureCollectsOneSamplePerIteration(t *testing.T) {
	tm := newTestTimer(t)

	run, err := tm.Measure(context.Background(), "noop",
		[]string{"sh", "-c", "exit 0"}, 3, nil, false)
	require.NoError(t, err)
	require.NotNil(t, run)

	assert.Equal(t, "noop", run.Name)
	assert.Equal(t, []float64{1, 1, 1}, run.Values())
	assert.NoError(t, run.Validate())
	assert.Contains(t, run.Metadata["command"], "exit 0")
}

func TestMeasureNonZeroExitIsFatal(t *testing.T) {
	tm := newTestTimer(t)

	run, err := tm.Measure(context.Background(), "dies",
		[]string{"sh", "-c", "echo boom >&2; exit 3"}, 5, nil, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBenchmarkDied)
	// Captured stderr is surfaced verbatim.
	assert.Contains(t, err.Error(), "boom")
	// No partial results: the whole measurement aborts.
	assert.Nil(t, run)
}

func TestMeasureZeroDeltaIsFatal(t *testing.T) {
	tm := newTestTimer(t)
	tm.cpuTime = func() (float64, error) { return 42.0, nil }

	run, err := tm.Measure(context.Background(), "frozen",
		[]string{"sh", "-c", "exit 0"}, 2, nil, false)
	assert.ErrorIs(t, err, ErrZeroSample)
	assert.Nil(t, run)
}

func TestMeasureMemoryTrackingUnsupported(t *testing.T) {
	tm := New(nil)

	_, err := tm.Measure(context.Background(), "mem",
		[]string{"sh", "-c", "exit 0"}, 1, nil, true)
	assert.ErrorIs(t, err, ErrMemoryTrackingUnsupported)
}

func TestMeasurePreconditions(t *testing.T) {
	tm := New(nil)

	_, err := tm.Measure(context.Background(), "bad", []string{"sh"}, 0, nil, false)
	assert.ErrorIs(t, err, ErrNoIterations)

	_, err = tm.Measure(context.Background(), "bad", nil, 1, nil, false)
	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestMeasureCancelledContext(t *testing.T) {
	tm := newTestTimer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tm.Measure(ctx, "interrupted",
		[]string{"sh", "-c", "exit 0"}, 1, nil, false)
	assert.ErrorIs(t, err, context.Canceled)
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package timer measures whole-process benchmark runs.
//
// The measurement primitive spawns a fully-formed command as a child
// process N times, strictly sequentially, and records the child CPU
// time consumed by each run. There is deliberately no concurrency:
// overlapping child processes would contend for CPUs and skew every
// sample. There is also no timeout; a hung benchmark blocks the suite
// until externally cancelled, at which point the in-flight child is
// killed and reaped before the cancellation propagates.
package timer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/AleutianAI/perfsuite/services/bench/suite"
)

// Timer runs benchmark commands and collects timing samples.
//
// Thread Safety: safe for concurrent use; each measurement owns its
// own process and buffers. In practice the harness calls it
// sequentially.
type Timer struct {
	logger *slog.Logger

	// cpuTime reads cumulative child CPU time. A field so tests can
	// substitute a deterministic clock.
	cpuTime func() (float64, error)
}

// New creates a Timer.
func New(logger *slog.Logger) *Timer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Timer{
		logger:  logger,
		cpuTime: childCPUTime,
	}
}

// Measure runs command iterations times and returns the collected run.
//
// The command must be a fully-formed argument list (interpreter,
// script, flags) needing no further substitution, and iterations must
// be at least 1. The command is executed once first as a priming run,
// outside the timed region, to pay one-time costs such as bytecode
// compilation and cache warm-up.
//
// Each timed repetition reads the cumulative child CPU time, spawns
// the command with stdout discarded and stderr captured, waits for it,
// and reads the clock again; the sample is the delta. A non-zero exit
// aborts the whole measurement with the captured stderr attached. A
// delta of exactly zero aborts too: the timer resolution cannot be
// trusted at that point.
//
// Memory tracking is not implemented; requesting it returns
// ErrMemoryTrackingUnsupported rather than being ignored. Per-run
// auxiliary metadata is not merged across repetitions; only the last
// repetition's is retained on the returned run.
func (t *Timer) Measure(ctx context.Context, name string, command []string, iterations int, env map[string]string, trackMemory bool) (*suite.Run, error) {
	if trackMemory {
		return nil, fmt.Errorf("%w: benchmark %s", ErrMemoryTrackingUnsupported, name)
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoIterations, iterations)
	}
	if len(command) == 0 {
		return nil, ErrEmptyCommand
	}

	environ := flattenEnv(env)

	// Priming run: pay bytecode compilation and cache warm-up outside
	// the timed region.
	if _, err := t.runOnce(ctx, command, environ); err != nil {
		return nil, fmt.Errorf("priming run: %w", err)
	}

	t.logger.Info("Running benchmark command",
		slog.String("name", name),
		slog.String("command", strings.Join(command, " ")),
		slog.Int("iterations", iterations),
	)

	run := suite.NewRun(name)
	run.SetMeta("command", strings.Join(command, " "))

	var lastStderr string
	for i := 0; i < iterations; i++ {
		before, err := t.cpuTime()
		if err != nil {
			return nil, err
		}

		stderr, err := t.runOnce(ctx, command, environ)
		if err != nil {
			return nil, err
		}

		after, err := t.cpuTime()
		if err != nil {
			return nil, err
		}

		elapsed := after - before
		if elapsed <= 0 {
			return nil, fmt.Errorf("%w: benchmark %s, iteration %d", ErrZeroSample, name, i+1)
		}

		t.logger.Debug("Collected sample",
			slog.String("name", name),
			slog.Int("iteration", i+1),
			slog.Float64("elapsed_s", elapsed),
		)
		run.Add(elapsed)
		lastStderr = stderr
	}

	if lastStderr != "" {
		run.SetMeta("stderr", lastStderr)
	}
	return run, nil
}

// runOnce spawns the command and blocks until it exits, discarding
// stdout and capturing stderr. On external cancellation the child is
// killed and reaped by os/exec before the context error is returned,
// so no zombie survives an interrupted suite.
func (t *Timer) runOnce(ctx context.Context, command []string, environ []string) (string, error) {
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Env = environ
	cmd.Stdout = io.Discard

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return "", fmt.Errorf("benchmark interrupted: %w", ctx.Err())
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrBenchmarkDied, strings.TrimSpace(stderr.String()))
	}
	return stderr.String(), nil
}

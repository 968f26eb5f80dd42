// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package harness drives a benchmark run end to end: selection
// expansion, version filtering, and the sequential measurement loop.
//
// Benchmarks run one at a time, and iterations within a benchmark run
// one at a time; nothing overlaps, so child processes never contend
// with each other for CPUs. No state crosses benchmark boundaries:
// each measurement owns its environment snapshot.
package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/AleutianAI/perfsuite/services/bench/catalog"
	"github.com/AleutianAI/perfsuite/services/bench/suite"
	"github.com/AleutianAI/perfsuite/services/bench/timer"
)

// Measurer is the measurement primitive the harness drives. The
// production implementation is timer.Timer.
type Measurer interface {
	Measure(ctx context.Context, name string, command []string, iterations int, env map[string]string, trackMemory bool) (*suite.Run, error)
}

// Harness runs a selected set of benchmarks against one interpreter.
type Harness struct {
	catalogue *catalog.Catalogue
	measurer  Measurer
	logger    *slog.Logger
	progress  io.Writer

	// probeVersion resolves the target interpreter's version. A field
	// so tests can substitute a fixed version.
	probeVersion func(ctx context.Context, interp []string) (string, error)
}

// New creates a Harness. progress receives the human-readable
// "[ 3/10] nbody..." lines; pass io.Discard to silence them.
func New(c *catalog.Catalogue, m Measurer, logger *slog.Logger, progress io.Writer) *Harness {
	if logger == nil {
		logger = slog.Default()
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Harness{
		catalogue:    c,
		measurer:     m,
		logger:       logger,
		progress:     progress,
		probeVersion: InterpreterVersion,
	}
}

// Run expands the selection tokens, filters out benchmarks the target
// interpreter cannot run, and measures the survivors sequentially.
//
// Selection and version incompatibilities are logged and skipped; a
// failing benchmark process is fatal and aborts the whole run with no
// partial suite returned.
func (h *Harness) Run(ctx context.Context, tokens []string, interp []string, opts catalog.RunOptions) (*suite.ResultSuite, error) {
	version, err := h.probeVersion(ctx, interp)
	if err != nil {
		return nil, fmt.Errorf("failed to identify target interpreter: %w", err)
	}
	h.logger.Info("Target interpreter identified",
		slog.String("interpreter", interp[0]),
		slog.String("version", version),
	)

	selected, err := h.catalogue.Expand(tokens, h.logger)
	if err != nil {
		return nil, err
	}
	toRun := h.catalogue.Filter(selected, version, h.logger)

	results := suite.NewResultSuite()
	width := len(strconv.Itoa(len(toRun)))
	for i, name := range toRun {
		fmt.Fprintf(h.progress, "[%*d/%d] %s...\n", width, i+1, len(toRun), name)

		d, ok := h.catalogue.Descriptor(name)
		if !ok {
			// Filter output is a subset of catalogue leaves.
			return nil, fmt.Errorf("no descriptor for benchmark %q", name)
		}

		env := timer.BuildEnv(nil, opts.InheritEnv)
		command := d.Build(interp, opts)

		run, err := h.measurer.Measure(ctx, name, command, opts.Iterations(), env, opts.TrackMemory)
		if err != nil {
			return nil, fmt.Errorf("benchmark %s: %w", name, err)
		}
		run.SetMeta("interpreter", interp[0])
		run.SetMeta("interpreter_version", version)

		if err := results.Add(run); err != nil {
			return nil, fmt.Errorf("benchmark %s: %w", name, err)
		}
	}
	return results, nil
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/perfsuite/cmd/perfsuite/config"
	"github.com/AleutianAI/perfsuite/pkg/ux"
	"github.com/AleutianAI/perfsuite/pkg/validation"
	"github.com/AleutianAI/perfsuite/services/bench/catalog"
	"github.com/AleutianAI/perfsuite/services/bench/compare"
	"github.com/AleutianAI/perfsuite/services/bench/harness"
	"github.com/AleutianAI/perfsuite/services/bench/suite"
	"github.com/AleutianAI/perfsuite/services/bench/timer"
)

// runBenchmarksCommand drives a full benchmark run: selection, version
// filtering, sequential measurement, then recording or display.
func runBenchmarksCommand(cmd *cobra.Command, args []string) {
	// Refuse to clobber an existing suite before any benchmark spawns;
	// a multi-hour run must not fail at the write.
	if outputPath != "" && !appendResults {
		if _, err := os.Stat(outputPath); err == nil {
			ux.Error(fmt.Sprintf("Output file %s already exists (use --append to merge into it)", outputPath))
			os.Exit(1)
		}
	}

	interpName := config.Global.Interpreter
	if len(args) == 1 {
		interpName = args[0]
	}
	interp, err := harness.ResolveInterpreter(interpName)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := catalog.RunOptions{
		DebugSingleSample: debugSingleSample,
		Rigorous:          rigorousMode,
		Fast:              fastMode,
		Verbose:           verboseMode,
		Affinity:          affinity,
		TrackMemory:       trackMemory,
		InheritEnv:        append(append([]string{}, config.Global.InheritEnv...), inheritEnvVars...),
	}

	logger := slogger()
	h := harness.New(
		catalog.New(config.Global.BenchmarksDir),
		timer.New(logger),
		logger,
		os.Stdout,
	)

	tokens, err := splitSelection(benchmarkSelection)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	results, err := h.Run(ctx, tokens, interp, opts)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	// The suite is always reported, whether or not it also goes to a
	// file.
	fmt.Println(hostReport())
	writeResults(os.Stdout, results)

	if outputPath == "" {
		return
	}
	if appendResults {
		err = suite.AppendTo(outputPath, results)
	} else {
		err = suite.Save(outputPath, results)
	}
	if err != nil {
		ux.Error(fmt.Sprintf("Failed to record results: %v", err))
		os.Exit(1)
	}
	ux.Success(fmt.Sprintf("Recorded %d benchmark(s) to %s", results.Len(), outputPath))
}

// hostReport describes the machine the suite just ran on.
func hostReport() string {
	return fmt.Sprintf("Report on %s/%s (%d CPUs)",
		runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
}

// splitSelection parses the -b flag into selection tokens. Every token
// is validated before it can reach a subprocess argument list; a
// malformed token is a configuration fault, not a skippable name.
func splitSelection(s string) ([]string, error) {
	var tokens []string
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(token, "-"))
		if err := validation.ValidateBenchmarkName(name); err != nil {
			return nil, fmt.Errorf("invalid selection token: %w", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// writeResults summarizes a suite, one line per benchmark.
func writeResults(w io.Writer, results *suite.ResultSuite) {
	for _, name := range results.Names() {
		run, ok := results.Get(name)
		if !ok {
			continue
		}
		values := run.Values()
		fmt.Fprintf(w, "%s: median %.1f ms +- %.1f ms (%d samples)\n",
			name,
			compare.Median(values)*1000,
			compare.StdDev(values)*1000,
			len(values))
	}
}

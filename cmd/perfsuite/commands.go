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
	"log"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/perfsuite/cmd/perfsuite/config"
	"github.com/AleutianAI/perfsuite/pkg/logging"
	"github.com/AleutianAI/perfsuite/pkg/ux"
)

// --- Global Command Variables ---
var (
	benchmarkSelection string   // comma-separated benchmark and group names, "-" prefix excludes
	outputPath         string   // where run writes the result suite
	appendResults      bool     // merge into an existing suite file instead of refusing to overwrite
	fastMode           bool     // 5 iterations
	rigorousMode       bool     // 25 iterations
	debugSingleSample  bool     // 1 iteration, for smoke-testing a benchmark
	verboseMode        bool     // pass --verbose to the benchmark scripts
	trackMemory        bool     // request per-run memory tracking
	affinity           string   // CPU list handed to the benchmark scripts
	inheritEnvVars     []string // extra host env vars propagated to benchmark children
	csvPath            string   // compare: also write a CSV document here
	outputStyle        string   // compare: "text" or "table"
	plainOutput        bool     // disable colored output

	rootCmd = &cobra.Command{
		Use:   "perfsuite",
		Short: "A cli to run and compare Python interpreter benchmarks",
		Long: `Perfsuite runs a curated suite of interpreter benchmarks against a
target Python binary, records the timings, and compares recorded
suites against each other with a significance test.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if plainOutput {
				ux.SetPlainMode(true)
			}
			if err := config.Load(); err != nil {
				log.Fatalf("Error loading config: %v", err)
			}
			level := logging.ParseLevel(config.Global.Logging.Level)
			if verboseMode {
				level = logging.LevelDebug
			}
			appLogger = logging.New(logging.Config{
				Level:   level,
				LogDir:  config.Global.Logging.Dir,
				Service: "perfsuite",
			})
		},
	}

	// --- Running ---
	runCmd = &cobra.Command{
		Use:   "run [interpreter]",
		Short: "Run the selected benchmarks against a target interpreter",
		Long: `Runs benchmarks sequentially against the given interpreter (or the
configured default) and prints or records the results.

Examples:
  perfsuite run python3 -b default -o py3.json
  perfsuite run python3 -b all,-startup --rigorous
  perfsuite run python2 -b 2n3 -o py2.json`,
		Args: cobra.MaximumNArgs(1),
		Run:  runBenchmarksCommand, // Defined in cmd_run.go
	}

	// --- Discovery ---
	listCmd = &cobra.Command{
		Use:   "list [interpreter]",
		Short: "List the benchmarks the target interpreter can run",
		Args:  cobra.MaximumNArgs(1),
		Run:   runListCommand, // Defined in cmd_list.go
	}
	listGroupsCmd = &cobra.Command{
		Use:   "list_groups [interpreter]",
		Short: "List benchmark groups and their runnable members",
		Args:  cobra.MaximumNArgs(1),
		Run:   runListGroupsCommand, // Defined in cmd_list.go
	}

	// --- Comparison ---
	compareCmd = &cobra.Command{
		Use:   "compare [baseline_file] [changed_file]",
		Short: "Compare two recorded result suites",
		Long: `Loads two result suites and reports, per benchmark present in both,
the change in timing and whether it is statistically significant.

Examples:
  perfsuite compare py2.json py3.json
  perfsuite compare py2.json py3.json -O table
  perfsuite compare py2.json py3.json --csv out.csv`,
		Args: cobra.ExactArgs(2),
		Run:  runCompareCommand, // Defined in cmd_compare.go
	}
)

// slogger returns the structured logger for command handlers.
func slogger() *slog.Logger {
	if appLogger == nil {
		return slog.Default()
	}
	return appLogger.Slog()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false,
		"Disable colored terminal output")

	runCmd.Flags().StringVarP(&benchmarkSelection, "benchmarks", "b", "",
		"Comma-separated benchmarks and groups to run; prefix a name with '-' to exclude it")
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Write the result suite to this file as JSON")
	runCmd.Flags().BoolVar(&appendResults, "append", false,
		"Merge results into the output file if it already exists")
	runCmd.Flags().BoolVarP(&fastMode, "fast", "f", false,
		"Get rough answers quickly (5 iterations)")
	runCmd.Flags().BoolVarP(&rigorousMode, "rigorous", "r", false,
		"Spend extra time for more precise results (25 iterations)")
	runCmd.Flags().BoolVar(&debugSingleSample, "debug-single-sample", false,
		"Collect a single sample per benchmark (smoke test)")
	runCmd.Flags().BoolVarP(&verboseMode, "verbose", "v", false,
		"Print progress information from the benchmark scripts")
	runCmd.Flags().BoolVar(&trackMemory, "track-memory", false,
		"Track per-benchmark memory usage instead of time")
	runCmd.Flags().StringVar(&affinity, "affinity", "",
		"CPU list to pin the benchmarks to, e.g. \"0,2\"")
	runCmd.Flags().StringSliceVar(&inheritEnvVars, "inherit-env", nil,
		"Host environment variables to propagate into the benchmarks")

	listCmd.Flags().StringVarP(&benchmarkSelection, "benchmarks", "b", "",
		"Restrict the listing to this selection")

	compareCmd.Flags().StringVar(&csvPath, "csv", "",
		"Also write the comparison as CSV to this file")
	compareCmd.Flags().StringVarP(&outputStyle, "output_style", "O", "text",
		"Comparison rendering: text or table")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(listGroupsCmd)
	rootCmd.AddCommand(compareCmd)
}

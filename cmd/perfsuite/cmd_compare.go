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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/perfsuite/pkg/ux"
	"github.com/AleutianAI/perfsuite/services/bench/compare"
	"github.com/AleutianAI/perfsuite/services/bench/suite"
)

// runCompareCommand loads two recorded suites and renders the
// per-benchmark comparison.
func runCompareCommand(cmd *cobra.Command, args []string) {
	base, err := suite.Load(args[0])
	if err != nil {
		ux.Error(fmt.Sprintf("Failed to load baseline suite: %v", err))
		os.Exit(1)
	}
	changed, err := suite.Load(args[1])
	if err != nil {
		ux.Error(fmt.Sprintf("Failed to load changed suite: %v", err))
		os.Exit(1)
	}

	records := compare.Compare(base, changed)
	if len(records) == 0 {
		ux.Warning("The two suites share no benchmarks.")
	}

	switch outputStyle {
	case "table":
		fmt.Print(compare.Table(records, filepath.Base(args[0]), filepath.Base(args[1])))
	case "text", "":
		fmt.Print(compare.Text(records))
	default:
		ux.Error(fmt.Sprintf("Unknown output style %q (want text or table)", outputStyle))
		os.Exit(1)
	}

	if csvPath != "" {
		if err := os.WriteFile(csvPath, []byte(compare.CSV(records)), 0644); err != nil {
			ux.Error(fmt.Sprintf("Failed to write CSV: %v", err))
			os.Exit(1)
		}
		ux.Success(fmt.Sprintf("Wrote CSV comparison to %s", csvPath))
	}
}

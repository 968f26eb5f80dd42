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
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/perfsuite/cmd/perfsuite/config"
	"github.com/AleutianAI/perfsuite/pkg/ux"
	"github.com/AleutianAI/perfsuite/services/bench/catalog"
	"github.com/AleutianAI/perfsuite/services/bench/harness"
)

// hostCompatible expands the selection (or every benchmark when the
// selection is empty) and drops the ones the target interpreter cannot
// run. Listing never spawns benchmarks, only the version probe.
func hostCompatible(args []string) (*catalog.Catalogue, []string) {
	interpName := config.Global.Interpreter
	if len(args) == 1 {
		interpName = args[0]
	}
	interp, err := harness.ResolveInterpreter(interpName)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}
	version, err := harness.InterpreterVersion(context.Background(), interp)
	if err != nil {
		ux.Error(fmt.Sprintf("Failed to identify target interpreter: %v", err))
		os.Exit(1)
	}

	c := catalog.New(config.Global.BenchmarksDir)
	logger := slogger()

	names, err := listSeed(c, benchmarkSelection, logger)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}
	return c, c.Filter(names, version, logger)
}

// listSeed returns the names a listing starts from: the expanded
// explicit selection when one was given, otherwise every current
// benchmark. Deprecated benchmarks are listed only when named.
func listSeed(c *catalog.Catalogue, selection string, logger *slog.Logger) ([]string, error) {
	if selection == "" {
		names, _ := c.Group("all")
		return names, nil
	}
	tokens, err := splitSelection(selection)
	if err != nil {
		return nil, err
	}
	return c.Expand(tokens, logger)
}

func runListCommand(cmd *cobra.Command, args []string) {
	_, names := hostCompatible(args)

	ux.Title("Available benchmarks:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
}

func runListGroupsCommand(cmd *cobra.Command, args []string) {
	c, names := hostCompatible(args)
	compatible := make(map[string]bool, len(names))
	for _, name := range names {
		compatible[name] = true
	}

	for _, group := range c.GroupNames() {
		members, _ := c.Group(group)
		var runnable []string
		for _, member := range members {
			// Nested groups stay listed under their own name.
			if c.IsGroup(member) || compatible[member] {
				runnable = append(runnable, member)
			}
		}
		// A group with nothing runnable on this interpreter is noise.
		if len(runnable) == 0 {
			continue
		}
		fmt.Printf("%s:\n", group)
		for _, member := range runnable {
			fmt.Printf("  %s\n", member)
		}
	}
}

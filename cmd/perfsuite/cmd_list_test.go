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
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/perfsuite/services/bench/catalog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListSeedExcludesDeprecated(t *testing.T) {
	c := catalog.New("benchmarks")
	names, err := listSeed(c, "", discardLogger())
	require.NoError(t, err)

	assert.Contains(t, names, "nbody")
	assert.Contains(t, names, "call_simple")
	for _, deprecated := range []string{"json_dump", "threaded_count", "iterative_count"} {
		assert.NotContains(t, names, deprecated)
	}
}

func TestListSeedExpandsSelection(t *testing.T) {
	c := catalog.New("benchmarks")
	names, err := listSeed(c, "calls", discardLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"call_method", "call_method_slots",
		"call_method_unknown", "call_simple",
	}, names)
}

func TestListSeedRejectsMalformedSelection(t *testing.T) {
	c := catalog.New("benchmarks")
	_, err := listSeed(c, "calls;id", discardLogger())
	assert.Error(t, err)
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.json")

	s := NewResultSuite()
	require.NoError(t, s.Add(makeRun("call_simple", 0.011, 0.012)))
	require.NoError(t, s.Add(makeRun("nbody", 0.4)))
	require.NoError(t, Save(path, s))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"call_simple", "nbody"}, loaded.Names())
	r, ok := loaded.Get("call_simple")
	require.True(t, ok)
	assert.Equal(t, []float64{0.011, 0.012}, r.Values())
	assert.Equal(t, s.runs["call_simple"].Metadata["run_id"], r.Metadata["run_id"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 99, "benchmarks": []}`), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadRejectsCorruptSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	doc := `{"version": 1, "benchmarks": [{"name": "nbody", "samples": [{"elapsed": 0}]}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNonPositiveSample)
}

func TestAppendToCreatesAndMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	first := NewResultSuite()
	require.NoError(t, first.Add(makeRun("nbody", 0.1)))
	require.NoError(t, AppendTo(path, first))

	second := NewResultSuite()
	require.NoError(t, second.Add(makeRun("nbody", 0.2)))
	require.NoError(t, second.Add(makeRun("float", 0.3)))
	require.NoError(t, AppendTo(path, second))

	merged, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"nbody", "float"}, merged.Names())
	r, _ := merged.Get("nbody")
	assert.Equal(t, []float64{0.1, 0.2}, r.Values())
}

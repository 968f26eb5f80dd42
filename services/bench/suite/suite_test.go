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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRun(name string, values ...float64) *Run {
	r := NewRun(name)
	for _, v := range values {
		r.Add(v)
	}
	return r
}

func TestRunValidate(t *testing.T) {
	tests := []struct {
		name    string
		run     *Run
		wantErr error
	}{
		{"valid", makeRun("nbody", 0.1, 0.2), nil},
		{"no name", makeRun("", 0.1), ErrUnnamedRun},
		{"no samples", makeRun("nbody"), ErrEmptyRun},
		{"zero sample", makeRun("nbody", 0.1, 0), ErrNonPositiveSample},
		{"negative sample", makeRun("nbody", -0.1), ErrNonPositiveSample},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRunValues(t *testing.T) {
	r := makeRun("nbody", 0.5, 0.25, 0.75)
	assert.Equal(t, []float64{0.5, 0.25, 0.75}, r.Values())
}

func TestNewRunMetadata(t *testing.T) {
	r := NewRun("nbody")
	assert.NotEmpty(t, r.Metadata["run_id"])
	assert.NotEmpty(t, r.Metadata["created_at"])
}

func TestResultSuiteInsertionOrder(t *testing.T) {
	s := NewResultSuite()
	require.NoError(t, s.Add(makeRun("zlib", 0.1)))
	require.NoError(t, s.Add(makeRun("call_simple", 0.2)))
	require.NoError(t, s.Add(makeRun("nbody", 0.3)))

	// Insertion order, not sorted order.
	assert.Equal(t, []string{"zlib", "call_simple", "nbody"}, s.Names())
	assert.Equal(t, 3, s.Len())
}

func TestResultSuiteAddDuplicateAppendsSamples(t *testing.T) {
	s := NewResultSuite()
	require.NoError(t, s.Add(makeRun("nbody", 0.1, 0.2)))
	require.NoError(t, s.Add(makeRun("nbody", 0.3)))

	r, ok := s.Get("nbody")
	require.True(t, ok)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, r.Values())
	assert.Equal(t, 1, s.Len())
}

func TestResultSuiteRejectsInvalidRun(t *testing.T) {
	s := NewResultSuite()
	err := s.Add(makeRun("broken"))
	assert.ErrorIs(t, err, ErrEmptyRun)
	assert.Equal(t, 0, s.Len())
}

func TestMerge(t *testing.T) {
	a := NewResultSuite()
	require.NoError(t, a.Add(makeRun("nbody", 0.1)))

	b := NewResultSuite()
	require.NoError(t, b.Add(makeRun("nbody", 0.2)))
	require.NoError(t, b.Add(makeRun("float", 0.3)))

	require.NoError(t, a.Merge(b))
	assert.Equal(t, []string{"nbody", "float"}, a.Names())
	r, _ := a.Get("nbody")
	assert.Equal(t, []float64{0.1, 0.2}, r.Values())
}

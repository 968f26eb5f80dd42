// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package suite holds timing samples and their persisted form.
//
// A Sample is one elapsed-time measurement of a whole child-process run.
// A Run is the ordered sample list collected for one benchmark, plus
// metadata about how it was collected. A ResultSuite maps benchmark
// names to Runs in insertion order; two persisted suites are the inputs
// to the comparison engine.
package suite

import (
	"time"

	"github.com/google/uuid"
)

// Sample is one elapsed-time measurement in seconds.
//
// Elapsed must be strictly positive: a zero reading means the timer
// resolution was too coarse to trust and is rejected upstream as a
// measurement fault.
type Sample struct {
	Elapsed float64 `json:"elapsed"`
}

// Run is an ordered sequence of samples for one benchmark.
//
// Metadata carries collection-level facts: at minimum the benchmark
// name, usually also the interpreter identity and the command that was
// measured. Per-iteration metadata is not merged across repetitions;
// only the final iteration's auxiliary data is retained.
type Run struct {
	Name     string            `json:"name"`
	Samples  []Sample          `json:"samples"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewRun creates a Run with a fresh run ID and creation timestamp in
// its metadata.
func NewRun(name string) *Run {
	return &Run{
		Name: name,
		Metadata: map[string]string{
			"run_id":     uuid.NewString(),
			"created_at": time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// Add appends one sample value (seconds) to the run.
func (r *Run) Add(elapsed float64) {
	r.Samples = append(r.Samples, Sample{Elapsed: elapsed})
}

// Values returns the raw elapsed times as a plain float64 slice for
// the statistics code.
func (r *Run) Values() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Elapsed
	}
	return out
}

// SetMeta records a metadata key, allocating the map if needed.
func (r *Run) SetMeta(key, value string) {
	if r.Metadata == nil {
		r.Metadata = make(map[string]string)
	}
	r.Metadata[key] = value
}

// Validate checks the run invariants: a name, at least one sample, and
// every sample strictly positive.
func (r *Run) Validate() error {
	if r.Name == "" {
		return ErrUnnamedRun
	}
	if len(r.Samples) == 0 {
		return ErrEmptyRun
	}
	for _, s := range r.Samples {
		if s.Elapsed <= 0 {
			return ErrNonPositiveSample
		}
	}
	return nil
}

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

// ResultSuite maps benchmark names to their collected runs.
//
// Insertion order is preserved: the comparison report follows the order
// benchmarks were added to the base suite, so the suite cannot be a bare
// Go map.
type ResultSuite struct {
	runs  map[string]*Run
	order []string
}

// NewResultSuite returns an empty suite.
func NewResultSuite() *ResultSuite {
	return &ResultSuite{runs: make(map[string]*Run)}
}

// Add validates the run and stores it. When a run with the same name is
// already present, the new samples are appended to the existing run,
// which is the behavior `run --append` relies on.
func (s *ResultSuite) Add(r *Run) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if existing, ok := s.runs[r.Name]; ok {
		existing.Samples = append(existing.Samples, r.Samples...)
		for k, v := range r.Metadata {
			existing.SetMeta(k, v)
		}
		return nil
	}
	s.runs[r.Name] = r
	s.order = append(s.order, r.Name)
	return nil
}

// Get returns the run for a benchmark name.
func (s *ResultSuite) Get(name string) (*Run, bool) {
	r, ok := s.runs[name]
	return r, ok
}

// Names returns benchmark names in insertion order.
func (s *ResultSuite) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of benchmarks in the suite.
func (s *ResultSuite) Len() int {
	return len(s.order)
}

// Merge adds every run of other into s, appending samples for names
// that already exist.
func (s *ResultSuite) Merge(other *ResultSuite) error {
	for _, name := range other.Names() {
		r, _ := other.Get(name)
		if err := s.Add(r); err != nil {
			return err
		}
	}
	return nil
}

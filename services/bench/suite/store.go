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
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// formatVersion is bumped when the on-disk document shape changes.
const formatVersion = 1

// document is the persisted form of a ResultSuite. Benchmarks are an
// ordered array, not an object, so insertion order survives the
// round-trip through JSON.
type document struct {
	Version    int       `json:"version"`
	SavedAt    time.Time `json:"saved_at"`
	Benchmarks []*Run    `json:"benchmarks"`
}

// Save writes the suite to path, creating or truncating the file.
// Callers that must not clobber existing results check for the path
// before running any benchmark; Save itself does not refuse overwrites
// because --append rewrites the merged file in place.
func Save(path string, s *ResultSuite) error {
	doc := document{
		Version: formatVersion,
		SavedAt: time.Now().UTC(),
	}
	for _, name := range s.Names() {
		r, _ := s.Get(name)
		doc.Benchmarks = append(doc.Benchmarks, r)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode suite: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write suite file: %w", err)
	}
	return nil
}

// Load reads a suite file written by Save.
func Load(path string) (*ResultSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse suite file %s: %w", path, err)
	}
	if doc.Version != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, doc.Version)
	}

	s := NewResultSuite()
	for _, r := range doc.Benchmarks {
		if err := s.Add(r); err != nil {
			return nil, fmt.Errorf("suite file %s, benchmark %q: %w", path, r.Name, err)
		}
	}
	return s, nil
}

// AppendTo merges the suite into the file at path. A missing file is
// treated as an empty suite, so append works on the first run too.
func AppendTo(path string, s *ResultSuite) error {
	existing := NewResultSuite()
	if _, err := os.Stat(path); err == nil {
		existing, err = Load(path)
		if err != nil {
			return err
		}
	}
	if err := existing.Merge(s); err != nil {
		return err
	}
	return Save(path, existing)
}

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

import "errors"

var (
	// ErrUnnamedRun indicates a run without a benchmark name.
	ErrUnnamedRun = errors.New("run has no benchmark name")

	// ErrEmptyRun indicates a run with no samples. Every persisted run
	// must carry at least one measurement.
	ErrEmptyRun = errors.New("run has no samples")

	// ErrNonPositiveSample indicates a zero or negative elapsed-time
	// sample, which is a measurement fault rather than valid data.
	ErrNonPositiveSample = errors.New("sample elapsed time is not strictly positive")

	// ErrUnsupportedFormat indicates a suite file whose format version
	// this build does not understand.
	ErrUnsupportedFormat = errors.New("unsupported suite file format version")
)

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package timer

import "errors"

var (
	// ErrBenchmarkDied indicates the child process exited non-zero.
	// Fatal for the whole measurement: not retried, not skipped. The
	// captured stderr is attached to the wrapping error verbatim.
	ErrBenchmarkDied = errors.New("benchmark died")

	// ErrZeroSample indicates a CPU-time delta of exactly zero. The
	// timer resolution is too coarse to trust such a reading, so it is
	// a hard measurement fault rather than a recorded sample.
	ErrZeroSample = errors.New("zero elapsed time sample")

	// ErrMemoryTrackingUnsupported is reported when memory tracking is
	// requested; the caller is signaled instead of the request being
	// silently ignored.
	ErrMemoryTrackingUnsupported = errors.New("memory tracking is not supported")

	// ErrNoIterations indicates an iteration count below one.
	ErrNoIterations = errors.New("iterations must be at least 1")

	// ErrEmptyCommand indicates an empty argument list.
	ErrEmptyCommand = errors.New("command must not be empty")
)

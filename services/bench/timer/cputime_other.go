// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

//go:build !unix

package timer

import "time"

var processStart = time.Now()

// childCPUTime falls back to monotonic wall time where child CPU
// accounting (getrusage RUSAGE_CHILDREN) is unavailable. The delta
// around a blocking wait still bounds the child's runtime, at the cost
// of including scheduler noise.
func childCPUTime() (float64, error) {
	return time.Since(processStart).Seconds(), nil
}

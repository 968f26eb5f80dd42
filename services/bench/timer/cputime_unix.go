// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

//go:build unix

package timer

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// childCPUTime returns the cumulative user CPU time, in seconds, of
// all reaped child processes of this process. Reading it immediately
// before a spawn and immediately after the wait gives the child's own
// CPU cost with no wall-clock noise from the orchestrator.
func childCPUTime() (float64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_CHILDREN, &ru); err != nil {
		return 0, fmt.Errorf("getrusage(RUSAGE_CHILDREN): %w", err)
	}
	return float64(ru.Utime.Sec) + float64(ru.Utime.Usec)/1e6, nil
}

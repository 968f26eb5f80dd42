// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package catalog

import "errors"

var (
	// ErrUnsupportedExclusion indicates an exclusion token that names a
	// group. Only leaf benchmarks can be excluded.
	ErrUnsupportedExclusion = errors.New("negative selection of a group is not supported")

	// ErrGroupCycle indicates a group definition that reaches itself
	// during recursive expansion.
	ErrGroupCycle = errors.New("benchmark group expansion cycle")
)

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package catalog holds the static benchmark catalogue: every runnable
// benchmark descriptor, the named groups used for bulk selection, and
// the operations over them.
//
// The catalogue is an ordinary value built by New with no ambient
// global state. Three operations work against it:
//
//   - Expand resolves a selection token list (names, groups, and
//     -exclusions) into concrete leaf benchmark names.
//   - Filter drops leaves whose supported-version interval does not
//     contain the target interpreter version.
//   - Groups/Descriptors enumerate the catalogue for the list verbs.
//
// Two groups are synthesized at construction time: "all" (every
// non-deprecated benchmark) and "2n3" (benchmarks runnable unmodified
// under both the legacy 2.x line and the 3.x line).
package catalog

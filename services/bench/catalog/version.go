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

import (
	"strings"

	"golang.org/x/mod/semver"
)

// compareVersions orders dotted numeric version tokens by numeric
// segment, not as plain strings: "2.10" sorts after "2.9". Tokens are
// normalized to at most three segments and handed to the semver
// ordering from golang.org/x/mod.
func compareVersions(a, b string) int {
	return semver.Compare(canonical(a), canonical(b))
}

// versionInRange reports minver <= v <= maxver, inclusive on both ends.
func versionInRange(v, minver, maxver string) bool {
	return compareVersions(minver, v) <= 0 && compareVersions(v, maxver) <= 0
}

// canonical turns an interpreter version token like "3.11.4.1" into a
// semver-comparable "v3.11.4". Interpreter micro-micro segments carry
// no compatibility information for the catalogue intervals.
func canonical(v string) string {
	segments := strings.Split(strings.TrimPrefix(v, "v"), ".")
	if len(segments) > 3 {
		segments = segments[:3]
	}
	return "v" + strings.Join(segments, ".")
}

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
	"log/slog"
)

// Filter drops benchmarks not supported by the target interpreter
// version. A leaf survives iff minver <= target <= maxver under
// numeric-segment version ordering. Discarded leaves are logged
// informationally; incompatibility is never an error. The output
// preserves input order and is always a subset of the input.
func (c *Catalogue) Filter(names []string, target string, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}

	kept := make([]string, 0, len(names))
	for _, name := range names {
		d, ok := c.descriptors[name]
		if !ok {
			logger.Warn("No benchmark named", slog.String("name", name))
			continue
		}
		minver, maxver := d.VersionRange()
		if !versionInRange(target, minver, maxver) {
			logger.Info("Skipping benchmark; not compatible with target interpreter",
				slog.String("name", name),
				slog.String("version", target),
				slog.String("minver", minver),
				slog.String("maxver", maxver),
			)
			continue
		}
		kept = append(kept, name)
	}
	return kept
}

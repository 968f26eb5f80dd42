// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation utilities for security-critical operations.
//
// This package contains validators for user-provided inputs that end up in
// file paths or subprocess argument lists. Using these validators prevents
// command injection and path traversal through benchmark selection tokens
// and interpreter version strings.
package validation

import (
	"fmt"
	"regexp"
)

// benchNamePattern matches valid benchmark and group names.
// Allows: lowercase letters, digits, underscores. Names like "call_simple",
// "json_dump_v2" or "2to3". Max length: 64 characters.
var benchNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_]{0,63}$`)

// versionPattern matches dotted numeric version tokens such as "2.7",
// "3.11" or "3.11.4". Segments are plain decimal numbers.
var versionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+){0,3}$`)

// ValidateBenchmarkName validates a benchmark or group name taken from the
// command line before it is used to build a subprocess argument list.
//
// Valid names:
//   - 1-64 characters
//   - lowercase letters a-z and digits 0-9
//   - underscores after the first character
//
// Returns an error if the name is invalid.
//
// Example:
//
//	if err := validation.ValidateBenchmarkName(token); err != nil {
//	    return fmt.Errorf("invalid selection token: %w", err)
//	}
func ValidateBenchmarkName(name string) error {
	if name == "" {
		return fmt.Errorf("benchmark name cannot be empty")
	}
	if !benchNamePattern.MatchString(name) {
		return fmt.Errorf("invalid benchmark name: %q (must be 1-64 lowercase alphanumeric chars or underscores)", name)
	}
	return nil
}

// ValidateVersion validates an interpreter version token before it is used
// in version-interval comparisons.
//
// Valid versions are 1-4 dotted decimal segments, e.g. "2.7" or "3.11.4".
func ValidateVersion(version string) error {
	if version == "" {
		return fmt.Errorf("version cannot be empty")
	}
	if !versionPattern.MatchString(version) {
		return fmt.Errorf("invalid version token: %q (must be dotted decimal segments)", version)
	}
	return nil
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package harness

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"slices"
	"strings"

	"github.com/AleutianAI/perfsuite/pkg/validation"
)

// versionProbe prints the interpreter's major.minor version on stdout.
const versionProbe = `import sys; print("%s.%s" % sys.version_info[:2])`

// ResolveInterpreter turns an interpreter name or path into an absolute
// command prefix. Benchmarks run with a scrubbed environment that may
// lack PATH, so the child must be spawned by absolute path.
func ResolveInterpreter(name string) ([]string, error) {
	abs, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("interpreter %q not found: %w", name, err)
	}
	return []string{abs}, nil
}

// InterpreterVersion runs the target interpreter once and reports the
// "major.minor" version it prints. The probe runs in the parent's
// environment; only the measured benchmarks get the scrubbed one.
func InterpreterVersion(ctx context.Context, interp []string) (string, error) {
	if len(interp) == 0 {
		return "", fmt.Errorf("empty interpreter command")
	}
	args := append(slices.Clone(interp), "-c", versionProbe)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("version probe failed: %w: %s", err, detail)
		}
		return "", fmt.Errorf("version probe failed: %w", err)
	}

	version := strings.TrimSpace(stdout.String())
	if err := validation.ValidateVersion(version); err != nil {
		return "", fmt.Errorf("version probe returned %q: %w", version, err)
	}
	return version, nil
}

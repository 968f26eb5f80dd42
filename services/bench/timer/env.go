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

import (
	"os"
	"runtime"
	"sort"
)

// windowsRequiredVars are always propagated on Windows regardless of
// the allow-list; the child interpreter cannot start without them.
var windowsRequiredVars = []string{"COMSPEC", "SystemRoot", "TEMP", "PATH"}

// BuildEnv massages an environment-variable map for the host platform.
//
// Starting from a copy of env (an empty map when nil), every variable
// named in inherit that exists in the host environment is copied in.
// On Windows the console/shell/path/temp variables are then added
// unconditionally unless already present. Benchmarks otherwise run in
// an explicitly constructed environment, not the host's.
func BuildEnv(env map[string]string, inherit []string) map[string]string {
	fixed := make(map[string]string, len(env)+len(inherit))
	for k, v := range env {
		fixed[k] = v
	}
	for _, name := range inherit {
		if value, ok := os.LookupEnv(name); ok {
			fixed[name] = value
		}
	}
	if runtime.GOOS == "windows" {
		for _, name := range windowsRequiredVars {
			if _, present := fixed[name]; present {
				continue
			}
			if value, ok := os.LookupEnv(name); ok {
				fixed[name] = value
			}
		}
	}
	return fixed
}

// flattenEnv converts the map to the sorted KEY=value list expected by
// os/exec. Sorting keeps the spawned environment deterministic.
func flattenEnv(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

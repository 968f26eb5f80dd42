// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejectsBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	assert.Error(t, cfg.Validate())
}

func TestValidateAllowsOmittedLevel(t *testing.T) {
	// A hand-edited config may drop logging.level entirely; the logger
	// falls back to info.
	cfg := DefaultConfig()
	cfg.Logging.Level = ""
	assert.NoError(t, cfg.Validate())
}

func TestValidateRequiresInterpreter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interpreter = ""
	assert.Error(t, cfg.Validate())
}

func TestCreateDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "perfsuite.yaml")
	require.NoError(t, createDefault(path))

	var loaded SuiteConfig
	require.NoError(t, loadFrom(path, &loaded))
	assert.Equal(t, DefaultConfig(), loaded)
}

func TestLoadFromOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perfsuite.yaml")
	doc := "interpreter: /opt/python/bin/python3\n" +
		"benchmarks_dir: /srv/benchmarks\n" +
		"inherit_env: [SSH_AUTH_SOCK]\n" +
		"logging:\n" +
		"  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	var loaded SuiteConfig
	require.NoError(t, loadFrom(path, &loaded))
	assert.Equal(t, "/opt/python/bin/python3", loaded.Interpreter)
	assert.Equal(t, "/srv/benchmarks", loaded.BenchmarksDir)
	assert.Equal(t, []string{"SSH_AUTH_SOCK"}, loaded.InheritEnv)
	assert.Equal(t, "debug", loaded.Logging.Level)
}

func TestLoadFromRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perfsuite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interpreter: ''\n"), 0644))

	var loaded SuiteConfig
	assert.Error(t, loadFrom(path, &loaded))
}

func TestLoadFromMissingFile(t *testing.T) {
	var loaded SuiteConfig
	assert.Error(t, loadFrom(filepath.Join(t.TempDir(), "absent.yaml"), &loaded))
}

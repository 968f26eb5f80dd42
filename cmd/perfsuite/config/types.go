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
	"github.com/go-playground/validator/v10"
)

// suiteValidate checks loaded configs against the struct tags below.
var suiteValidate = validator.New()

type SuiteConfig struct {
	// Interpreter is the default target when the run command gets no
	// interpreter argument. A bare name is resolved through PATH.
	Interpreter string `yaml:"interpreter" validate:"required"`

	// BenchmarksDir holds the benchmark scripts the command builders
	// reference.
	BenchmarksDir string `yaml:"benchmarks_dir" validate:"required"`

	// InheritEnv names host environment variables propagated into every
	// benchmark child process, in addition to any named on the command
	// line. Everything else is scrubbed.
	InheritEnv []string `yaml:"inherit_env"`

	Logging LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	// An omitted level falls back to logging.ParseLevel's info default.
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Dir   string `yaml:"dir"` // empty disables the log file
}

// Validate reports the first schema violation in the config.
func (c SuiteConfig) Validate() error {
	return suiteValidate.Struct(c)
}

func DefaultConfig() SuiteConfig {
	return SuiteConfig{
		Interpreter:   "python3",
		BenchmarksDir: "benchmarks",
		InheritEnv:    []string{},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "~/.perfsuite/logs",
		},
	}
}

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
	"sort"
)

// Default supported-version interval for descriptors registered without
// an explicit range.
const (
	DefaultMinVer = "2.0"
	DefaultMaxVer = "4.0"
)

// Boundaries for the synthesized "2n3" group: a benchmark belongs to it
// when it still runs on the legacy 2.x line and already runs on 3.x.
const (
	legacyBoundary    = "2.7"
	nextMajorBoundary = "3.2"
)

// RunOptions carries the per-invocation settings that shape a benchmark
// command line and its measurement loop.
type RunOptions struct {
	// Rigor ladder. DebugSingleSample wins over Rigorous wins over Fast.
	DebugSingleSample bool
	Rigorous          bool
	Fast              bool

	// Verbose passes -v through to the benchmark script.
	Verbose bool

	// Affinity pins the benchmark to CPUs, passed through verbatim.
	Affinity string

	// TrackMemory requests memory accounting. The timer reports it as
	// unsupported rather than silently ignoring the request.
	TrackMemory bool

	// InheritEnv names host environment variables copied into the
	// child process environment.
	InheritEnv []string
}

// Iterations maps the rigor ladder to a repetition count for
// command-style benchmarks.
func (o RunOptions) Iterations() int {
	switch {
	case o.DebugSingleSample:
		return 1
	case o.Fast:
		return 5
	case o.Rigorous:
		return 25
	default:
		return 10
	}
}

// CommandBuilder produces the full child-process argument list for a
// benchmark: interpreter command prefix, script path, and flags. The
// result needs no further substitution.
type CommandBuilder func(interp []string, opts RunOptions) []string

// Descriptor is one registered benchmark: its unique name, the command
// builder, and the inclusive supported-version interval. Descriptors
// are immutable once registered.
type Descriptor struct {
	Name   string
	Build  CommandBuilder
	MinVer string
	MaxVer string
}

// VersionRange returns the descriptor's interval with defaults applied
// for unset endpoints.
func (d Descriptor) VersionRange() (minver, maxver string) {
	minver, maxver = d.MinVer, d.MaxVer
	if minver == "" {
		minver = DefaultMinVer
	}
	if maxver == "" {
		maxver = DefaultMaxVer
	}
	return minver, maxver
}

// Catalogue is the full descriptor table plus the group definitions,
// including the synthesized "all" and "2n3" groups.
type Catalogue struct {
	descriptors map[string]Descriptor
	groups      map[string][]string
}

// Descriptor looks up a benchmark by name.
func (c *Catalogue) Descriptor(name string) (Descriptor, bool) {
	d, ok := c.descriptors[name]
	return d, ok
}

// IsGroup reports whether name is a group definition.
func (c *Catalogue) IsGroup(name string) bool {
	_, ok := c.groups[name]
	return ok
}

// Group returns the ordered member list of a group.
func (c *Catalogue) Group(name string) ([]string, bool) {
	members, ok := c.groups[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(members))
	copy(out, members)
	return out, true
}

// GroupNames returns all group names sorted.
func (c *Catalogue) GroupNames() []string {
	names := make([]string, 0, len(c.groups))
	for name := range c.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Leaves returns every registered benchmark name sorted, including
// deprecated ones.
func (c *Catalogue) Leaves() []string {
	names := make([]string, 0, len(c.descriptors))
	for name := range c.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

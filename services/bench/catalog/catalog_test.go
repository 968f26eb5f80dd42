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
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllGroupIsSortedNonDeprecated(t *testing.T) {
	c := testCatalogue()
	all, ok := c.Group("all")
	require.True(t, ok)
	assert.True(t, sort.StringsAreSorted(all))

	deprecated := asSet(c.groups["deprecated"])
	leafCount := 0
	for _, name := range c.Leaves() {
		if !deprecated[name] {
			leafCount++
		}
	}
	assert.Len(t, all, leafCount)
}

func TestEveryGroupMemberResolves(t *testing.T) {
	c := testCatalogue()
	for _, group := range c.GroupNames() {
		members, _ := c.Group(group)
		for _, member := range members {
			_, isLeaf := c.Descriptor(member)
			if !isLeaf && !c.IsGroup(member) {
				t.Errorf("group %q member %q is neither a benchmark nor a group", group, member)
			}
		}
	}
}

func TestScriptCommandShape(t *testing.T) {
	c := New("/opt/bench")
	d, ok := c.Descriptor("nbody")
	require.True(t, ok)

	interp := []string{"/usr/bin/python3"}
	cmd := d.Build(interp, RunOptions{})
	assert.Equal(t, []string{"/usr/bin/python3", filepath.Join("/opt/bench", "bm_nbody.py")}, cmd)
}

func TestScriptCommandRigorLadder(t *testing.T) {
	c := New("bench")
	d, _ := c.Descriptor("nbody")
	interp := []string{"python"}

	cmd := d.Build(interp, RunOptions{Fast: true})
	assert.Contains(t, cmd, "--fast")

	cmd = d.Build(interp, RunOptions{Rigorous: true})
	assert.Contains(t, cmd, "--rigorous")

	// Single-sample debugging wins over the other flags.
	cmd = d.Build(interp, RunOptions{DebugSingleSample: true, Rigorous: true, Fast: true})
	assert.Contains(t, cmd, "--debug-single-sample")
	assert.NotContains(t, cmd, "--rigorous")
	assert.NotContains(t, cmd, "--fast")
}

func TestScriptCommandExtraArgsLast(t *testing.T) {
	c := New("bench")
	d, _ := c.Descriptor("fastpickle")
	cmd := d.Build([]string{"python"}, RunOptions{Verbose: true, Affinity: "0-3"})

	assert.Contains(t, cmd, "--verbose")
	assert.Contains(t, cmd, "--affinity=0-3")
	// Benchmark-specific arguments stay at the end of the list.
	assert.Equal(t, []string{"--use_cpickle", "pickle"}, cmd[len(cmd)-2:])
}

func TestIterationsLadder(t *testing.T) {
	assert.Equal(t, 10, RunOptions{}.Iterations())
	assert.Equal(t, 5, RunOptions{Fast: true}.Iterations())
	assert.Equal(t, 25, RunOptions{Rigorous: true}.Iterations())
	assert.Equal(t, 1, RunOptions{DebugSingleSample: true, Rigorous: true}.Iterations())
}

func TestVersionRangeDefaults(t *testing.T) {
	d := Descriptor{Name: "x"}
	lo, hi := d.VersionRange()
	assert.Equal(t, DefaultMinVer, lo)
	assert.Equal(t, DefaultMaxVer, hi)

	d = Descriptor{Name: "y", MaxVer: "2.7"}
	lo, hi = d.VersionRange()
	assert.Equal(t, DefaultMinVer, lo)
	assert.Equal(t, "2.7", hi)
}

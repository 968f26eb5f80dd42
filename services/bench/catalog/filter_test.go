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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterDropsIncompatible(t *testing.T) {
	c := testCatalogue()

	// html5lib tops out at 2.7, chameleon starts at 2.7.
	kept := c.Filter([]string{"html5lib", "chameleon", "nbody"}, "3.4", nil)
	assert.Equal(t, []string{"chameleon", "nbody"}, kept)

	kept = c.Filter([]string{"html5lib", "chameleon", "nbody"}, "2.6", nil)
	assert.Equal(t, []string{"html5lib", "nbody"}, kept)
}

func TestFilterInclusiveBounds(t *testing.T) {
	c := testCatalogue()
	kept := c.Filter([]string{"html5lib", "chameleon"}, "2.7", nil)
	assert.Equal(t, []string{"html5lib", "chameleon"}, kept)
}

func TestFilterOutputIsSubsetOfInput(t *testing.T) {
	c := testCatalogue()
	input, err := c.Expand([]string{"all"}, nil)
	require.NoError(t, err)

	kept := c.Filter(input, "3.6", nil)
	inputSet := asSet(input)
	for _, name := range kept {
		assert.True(t, inputSet[name], "%q not in filter input", name)
	}
	assert.LessOrEqual(t, len(kept), len(input))
}

func TestFilterNumericSegmentOrdering(t *testing.T) {
	c := testCatalogue()
	c.descriptors["segcheck"] = Descriptor{
		Name:   "segcheck",
		MinVer: "2.9",
		MaxVer: "4.0",
	}

	// "2.10" must compare greater than "2.9".
	assert.Equal(t, []string{"segcheck"}, c.Filter([]string{"segcheck"}, "2.10", nil))
	assert.Empty(t, c.Filter([]string{"segcheck"}, "2.8", nil))
}

func TestFilterUnknownNameDropped(t *testing.T) {
	c := testCatalogue()
	kept := c.Filter([]string{"nbody", "ghost"}, "3.4", nil)
	assert.Equal(t, []string{"nbody"}, kept)
}

func TestTwoAndThreeGroup(t *testing.T) {
	c := testCatalogue()
	dual, ok := c.Group("2n3")
	require.True(t, ok)
	set := asSet(dual)

	// Default interval [2.0, 4.0] spans both boundaries.
	assert.True(t, set["nbody"])
	// Capped at 2.7, cannot run on the 3.x line.
	assert.False(t, set["html5lib"])
	assert.False(t, set["slowpickle"])
	// Deprecated benchmarks are excluded even when the interval spans.
	assert.False(t, set["json_dump"])
}

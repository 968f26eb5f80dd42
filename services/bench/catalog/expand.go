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
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Expand resolves a selection token list into sorted leaf benchmark
// names.
//
// Each token is a bare name (inclusion) or "-name" (exclusion).
// Inclusions expand recursively through group definitions and are
// unioned; when no inclusion tokens are given the "default" group is
// used. Exclusions must name leaves: excluding a group fails with
// ErrUnsupportedExclusion. Tokens that resolve to nothing the
// catalogue knows are logged as warnings and dropped, never fatal.
//
// The result is always a subset of the non-deprecated leaf names.
func (c *Catalogue) Expand(tokens []string, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	legal := make(map[string]bool)
	for _, name := range c.groups["all"] {
		legal[name] = true
	}

	var positive, negative []string
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		if strings.HasPrefix(tok, "-") {
			negative = append(negative, strings.TrimPrefix(tok, "-"))
		} else {
			positive = append(positive, tok)
		}
	}
	if len(positive) == 0 {
		positive = []string{"default"}
	}

	selected := make(map[string]bool)
	for _, name := range positive {
		leaves, err := c.expandName(name, make(map[string]bool))
		if err != nil {
			return nil, err
		}
		for _, leaf := range leaves {
			if !legal[leaf] {
				logger.Warn("No benchmark named", slog.String("name", leaf))
				continue
			}
			selected[leaf] = true
		}
	}

	for _, name := range negative {
		if c.IsGroup(name) {
			return nil, fmt.Errorf("%w: -%s", ErrUnsupportedExclusion, name)
		}
		if !legal[name] {
			logger.Warn("No benchmark named", slog.String("name", name))
			continue
		}
		delete(selected, name)
	}

	out := make([]string, 0, len(selected))
	for name := range selected {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// expandName recursively replaces group names with their members.
// A name that matches no group is a leaf and is yielded as-is; legality
// against the catalogue is the caller's concern. The visited set tracks
// the current expansion path so a self-referencing group fails fast
// instead of recursing unboundedly.
func (c *Catalogue) expandName(name string, visited map[string]bool) ([]string, error) {
	members, ok := c.groups[name]
	if !ok {
		return []string{name}, nil
	}
	if visited[name] {
		return nil, fmt.Errorf("%w: %s", ErrGroupCycle, name)
	}
	visited[name] = true
	defer delete(visited, name)

	var leaves []string
	for _, member := range members {
		expanded, err := c.expandName(member, visited)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, expanded...)
	}
	return leaves, nil
}

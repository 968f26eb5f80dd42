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
)

// New builds the full catalogue. scriptsDir is the directory holding
// the benchmark scripts; every command builder resolves its script
// relative to it. The returned value is self-contained and safe to
// share.
func New(scriptsDir string) *Catalogue {
	c := &Catalogue{
		descriptors: make(map[string]Descriptor),
		groups:      baseGroups(),
	}
	c.registerAll(scriptsDir)
	c.synthesizeGroups()
	return c
}

// script returns a CommandBuilder for a standard benchmark script:
// interpreter prefix, script path, rigor/verbosity flags, then any
// benchmark-specific extra arguments.
func script(scriptsDir, file string, extra ...string) CommandBuilder {
	path := filepath.Join(scriptsDir, file)
	return func(interp []string, opts RunOptions) []string {
		args := make([]string, 0, len(interp)+len(extra)+4)
		args = append(args, interp...)
		args = append(args, path)

		switch {
		case opts.DebugSingleSample:
			args = append(args, "--debug-single-sample")
		case opts.Rigorous:
			args = append(args, "--rigorous")
		case opts.Fast:
			args = append(args, "--fast")
		}
		if opts.Verbose {
			args = append(args, "--verbose")
		}
		if opts.Affinity != "" {
			args = append(args, "--affinity="+opts.Affinity)
		}

		return append(args, extra...)
	}
}

// register adds one descriptor. Empty interval endpoints fall back to
// the catalogue defaults via Descriptor.VersionRange.
func (c *Catalogue) register(name, minver, maxver string, build CommandBuilder) {
	c.descriptors[name] = Descriptor{
		Name:   name,
		Build:  build,
		MinVer: minver,
		MaxVer: maxver,
	}
}

// registerAll declares every benchmark the suite knows about. The
// names and intervals form the public contract of the `list` verb, so
// changes here are release-noted.
func (c *Catalogue) registerAll(dir string) {
	// Application-level workloads.
	c.register("2to3", "", "", script(dir, "bm_2to3.py"))
	c.register("chameleon", "2.7", "", script(dir, "bm_chameleon.py"))
	c.register("django_template", "2.7", "", script(dir, "bm_django_template.py"))
	c.register("tornado_http", "", "", script(dir, "bm_tornado_http.py"))
	c.register("html5lib", "", "2.7", script(dir, "bm_html5lib.py"))
	c.register("spambayes", "", "2.7", script(dir, "bm_spambayes.py"))

	// Template engines.
	c.register("mako", "", "", script(dir, "bm_mako.py"))

	// Math kernels.
	c.register("float", "", "", script(dir, "bm_float.py"))
	c.register("nbody", "", "", script(dir, "bm_nbody.py"))
	c.register("pidigits", "", "", script(dir, "bm_pidigits.py"))

	// Pure-interpreter workloads.
	c.register("chaos", "", "", script(dir, "bm_chaos.py"))
	c.register("fannkuch", "", "", script(dir, "bm_fannkuch.py"))
	c.register("go", "", "", script(dir, "bm_go.py"))
	c.register("hexiom2", "", "", script(dir, "bm_hexiom2.py"))
	c.register("meteor_contest", "", "", script(dir, "bm_meteor_contest.py"))
	c.register("nqueens", "", "", script(dir, "bm_nqueens.py"))
	c.register("pathlib", "", "", script(dir, "bm_pathlib.py"))
	c.register("raytrace", "", "", script(dir, "bm_raytrace.py"))
	c.register("richards", "", "", script(dir, "bm_richards.py"))
	c.register("spectral_norm", "", "", script(dir, "bm_spectral_norm.py"))
	c.register("telco", "", "", script(dir, "bm_telco.py"))
	c.register("unpack_sequence", "", "", script(dir, "bm_unpack_sequence.py"))

	// Call overhead.
	c.register("call_simple", "", "", script(dir, "bm_call_simple.py"))
	c.register("call_method", "", "", script(dir, "bm_call_method.py"))
	c.register("call_method_slots", "", "", script(dir, "bm_call_method_slots.py"))
	c.register("call_method_unknown", "", "", script(dir, "bm_call_method_unknown.py"))

	// Serialization.
	c.register("fastpickle", "", "", script(dir, "bm_pickle.py", "--use_cpickle", "pickle"))
	c.register("fastunpickle", "", "", script(dir, "bm_pickle.py", "--use_cpickle", "unpickle"))
	c.register("pickle_list", "", "", script(dir, "bm_pickle.py", "--use_cpickle", "pickle_list"))
	c.register("unpickle_list", "", "", script(dir, "bm_pickle.py", "--use_cpickle", "unpickle_list"))
	c.register("pickle_dict", "", "", script(dir, "bm_pickle.py", "--use_cpickle", "pickle_dict"))
	// 3.x dropped the pure-interpreter pickle.
	c.register("slowpickle", "", "2.7", script(dir, "bm_pickle.py", "pickle"))
	c.register("slowunpickle", "", "2.7", script(dir, "bm_pickle.py", "unpickle"))
	c.register("etree_parse", "", "", script(dir, "bm_elementtree.py", "parse"))
	c.register("etree_iterparse", "", "", script(dir, "bm_elementtree.py", "iterparse"))
	c.register("etree_generate", "", "", script(dir, "bm_elementtree.py", "generate"))
	c.register("etree_process", "", "", script(dir, "bm_elementtree.py", "process"))
	c.register("json_dump", "", "", script(dir, "bm_json.py", "json_dump"))
	c.register("json_load", "", "", script(dir, "bm_json.py", "json_load"))
	c.register("json_dump_v2", "", "", script(dir, "bm_json_dump_v2.py"))

	// Regex engines.
	c.register("regex_v8", "", "", script(dir, "bm_regex_v8.py"))
	c.register("regex_effbot", "", "", script(dir, "bm_regex_effbot.py"))
	c.register("regex_compile", "", "", script(dir, "bm_regex_compile.py"))

	// Logging.
	c.register("silent_logging", "", "", script(dir, "bm_logging.py", "no_output"))
	c.register("simple_logging", "", "", script(dir, "bm_logging.py", "simple_output"))
	c.register("formatted_logging", "", "", script(dir, "bm_logging.py", "formatted_output"))

	// Startup.
	c.register("normal_startup", "", "", script(dir, "bm_startup.py"))
	c.register("startup_nosite", "", "", script(dir, "bm_startup.py", "--no-site"))
	c.register("hg_startup", "", "2.7", script(dir, "bm_hg_startup.py"))

	// Threading.
	c.register("threaded_count", "", "", script(dir, "bm_threading.py", "threaded_count"))
	c.register("iterative_count", "", "", script(dir, "bm_threading.py", "iterative_count"))
}

// baseGroups is the hand-maintained group table. "default" is what an
// empty selection runs. Members of "deprecated" are removed from the
// synthesized "all" group.
func baseGroups() map[string][]string {
	return map[string][]string{
		"default": {"2to3", "chameleon", "django_template", "nbody",
			"tornado_http", "fastpickle", "fastunpickle",
			"regex_v8", "json_dump_v2", "json_load"},
		"startup":   {"normal_startup", "startup_nosite", "hg_startup"},
		"regex":     {"regex_v8", "regex_effbot", "regex_compile"},
		"threading": {"threaded_count", "iterative_count"},
		"serialize": {"slowpickle", "slowunpickle",
			"fastpickle", "fastunpickle",
			"etree",
			"json_dump_v2", "json_load"},
		"etree": {"etree_generate", "etree_parse",
			"etree_iterparse", "etree_process"},
		"apps": {"2to3", "chameleon", "html5lib",
			"spambayes", "tornado_http"},
		"calls": {"call_simple", "call_method", "call_method_slots",
			"call_method_unknown"},
		"math":     {"float", "nbody", "pidigits"},
		"template": {"django_template", "mako"},
		"logging": {"silent_logging", "simple_logging",
			"formatted_logging"},
		"deprecated": {"iterative_count", "json_dump", "threaded_count"},
	}
}

// synthesizeGroups derives "all" and "2n3" from the descriptor table.
func (c *Catalogue) synthesizeGroups() {
	deprecated := make(map[string]bool)
	for _, name := range c.groups["deprecated"] {
		deprecated[name] = true
	}

	var all, dual []string
	for name, d := range c.descriptors {
		if deprecated[name] {
			continue
		}
		all = append(all, name)

		minver, maxver := d.VersionRange()
		if compareVersions(minver, legacyBoundary) <= 0 &&
			compareVersions(nextMajorBoundary, maxver) <= 0 {
			dual = append(dual, name)
		}
	}
	sort.Strings(all)
	sort.Strings(dual)

	c.groups["all"] = all
	c.groups["2n3"] = dual
}

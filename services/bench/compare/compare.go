// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package compare computes summary statistics over two persisted
// result suites and renders the comparison as text, CSV, or a table.
package compare

import (
	"fmt"

	"github.com/AleutianAI/perfsuite/services/bench/suite"
)

// Record is the comparison result for one benchmark present in both
// suites: a robust center (median) and spread (standard deviation) per
// side, the raw means for machine-readable output, the timing ratio,
// and the significance verdict.
type Record struct {
	Name string

	BaseMedian    float64
	BaseStdDev    float64
	ChangedMedian float64
	ChangedStdDev float64

	BaseMean    float64
	ChangedMean float64

	// Ratio is changed-median / base-median. Greater than 1 means the
	// changed interpreter took longer.
	Ratio float64

	TScore      float64
	Significant bool
}

// Delta renders the ratio with the reciprocal convention: the printed
// multiplier is always at least 1, so "1.19x slower" means the changed
// run took 1.19 times as long. Identical centers render as
// "insignificant".
func (r Record) Delta() string {
	switch {
	case r.Ratio > 1:
		return fmt.Sprintf("%.2fx slower", r.Ratio)
	case r.Ratio < 1:
		return fmt.Sprintf("%.2fx faster", 1/r.Ratio)
	default:
		return "insignificant"
	}
}

// Significance renders the t-test verdict with the statistic to two
// decimals.
func (r Record) Significance() string {
	if r.Significant {
		return fmt.Sprintf("Significant (t=%.2f)", r.TScore)
	}
	return "Not significant"
}

// Compare builds one Record per benchmark name present in both suites.
//
// Names present in only one suite are omitted, not errors. Output
// order follows the order benchmarks appear in the base suite; nothing
// is re-sorted, so comparing the same two suites twice yields
// identical reports.
func Compare(base, changed *suite.ResultSuite) []Record {
	var records []Record
	for _, name := range base.Names() {
		baseRun, _ := base.Get(name)
		changedRun, ok := changed.Get(name)
		if !ok {
			continue
		}

		baseValues := baseRun.Values()
		changedValues := changedRun.Values()

		rec := Record{
			Name:          name,
			BaseMedian:    Median(baseValues),
			BaseStdDev:    StdDev(baseValues),
			ChangedMedian: Median(changedValues),
			ChangedStdDev: StdDev(changedValues),
			BaseMean:      Mean(baseValues),
			ChangedMean:   Mean(changedValues),
		}
		if rec.BaseMedian != 0 {
			rec.Ratio = rec.ChangedMedian / rec.BaseMedian
		}
		rec.TScore, rec.Significant = IsSignificant(baseValues, changedValues)

		records = append(records, rec)
	}
	return records
}

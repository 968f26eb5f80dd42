// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package compare

import (
	"math"
	"sort"
)

// The statistics here operate on plain float64 slices with no
// benchmarking-specific numeric types, so the comparison engine stays
// portable and independently testable.

// Mean returns the arithmetic mean. Zero for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Median returns the middle value of the sorted data, averaging the
// two middle values for even-length input. Timing distributions are
// skewed by scheduler noise, so the median is the preferred center.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Variance returns the sample variance (n-1 denominator). Zero when
// fewer than two values.
func Variance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return sumOfSquares(xs) / float64(len(xs)-1)
}

// StdDev returns the sample standard deviation.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// sumOfSquares is the sum of squared deviations from the mean.
func sumOfSquares(xs []float64) float64 {
	mean := Mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return sum
}

// pooledSampleVariance combines the deviation of both samples over
// their joint degrees of freedom, as used by the independent
// two-sample Student's t-test.
func pooledSampleVariance(a, b []float64) float64 {
	df := len(a) + len(b) - 2
	if df <= 0 {
		return 0
	}
	return (sumOfSquares(a) + sumOfSquares(b)) / float64(df)
}

// TScore computes the t statistic of the independent two-sample
// Student's t-test for the raw sample lists.
func TScore(a, b []float64) float64 {
	pooled := pooledSampleVariance(a, b)
	if pooled == 0 {
		return 0
	}
	err := pooled * (1/float64(len(a)) + 1/float64(len(b)))
	return (Mean(a) - Mean(b)) / math.Sqrt(err)
}

// tDist95ConfLevels[df] is the two-tailed 95%-confidence critical value
// of the t distribution for df degrees of freedom, df <= 30.
var tDist95ConfLevels = []float64{
	0, 12.706, 4.303, 3.182, 2.776,
	2.571, 2.447, 2.365, 2.306, 2.262,
	2.228, 2.201, 2.179, 2.160, 2.145,
	2.131, 2.120, 2.110, 2.101, 2.093,
	2.086, 2.080, 2.074, 2.069, 2.064,
	2.060, 2.056, 2.052, 2.048, 2.045,
	2.042,
}

// tDist95ConfLevel returns the critical value for df degrees of
// freedom, using the asymptotic value beyond the table.
func tDist95ConfLevel(df int) float64 {
	if df <= 0 {
		return 0
	}
	if df >= len(tDist95ConfLevels) {
		return 1.960
	}
	return tDist95ConfLevels[df]
}

// IsSignificant runs the two-sample t-test and reports the t statistic
// together with whether |t| exceeds the 95%-confidence critical value
// for the samples' degrees of freedom.
//
// Constant samples leave the statistic undefined (zero pooled
// variance); t is reported as 0 and significance reduces to whether the
// means differ at all, since a difference with no spread is
// deterministic rather than sampling noise.
func IsSignificant(a, b []float64) (tScore float64, significant bool) {
	df := len(a) + len(b) - 2
	tScore = TScore(a, b)
	if pooledSampleVariance(a, b) == 0 {
		return tScore, Mean(a) != Mean(b)
	}
	return tScore, math.Abs(tScore) >= tDist95ConfLevel(df)
}

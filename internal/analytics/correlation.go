// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package analytics

import (
	"math"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
)

// CorrelationResult holds Pearson coefficients between a target metric's
// daily series and each other core metric, along with the target's series
// for charting.
type CorrelationResult struct {
	TargetMetric string             `json:"targetMetric"`
	Correlations map[string]float64 `json:"correlations"`
	TimePoints   []string           `json:"timePoints"`
	Values       []float64          `json:"values"`
}

// Correlate computes Pearson's r between the target metric and each other
// core metric. The records are always re-bucketed to daily granularity
// internally, regardless of what the caller used elsewhere: correlation is
// defined only over daily series.
//
// Days with no activity records never produce a bucket, so sparse series
// are not zero-filled; all metric series shrink together and stay
// index-aligned by day.
func Correlate(records []models.NormalizedActivity, target string) CorrelationResult {
	buckets := BucketRecords(records, GranularityDay)

	result := CorrelationResult{
		TargetMetric: target,
		Correlations: make(map[string]float64, len(CoreMetrics)-1),
		TimePoints:   make([]string, len(buckets)),
		Values:       metricSeries(buckets, target),
	}

	for i, b := range buckets {
		result.TimePoints[i] = b.Key
	}

	for _, m := range CoreMetrics {
		if m == target {
			continue
		}
		result.Correlations[m] = Pearson(result.Values, metricSeries(buckets, m))
	}

	return result
}

// metricSeries extracts one metric's values from ordered buckets.
func metricSeries(buckets []Bucket, metric string) []float64 {
	out := make([]float64, len(buckets))
	for i, b := range buckets {
		out[i] = b.MetricValue(metric)
	}
	return out
}

// Pearson computes the correlation coefficient between two index-aligned
// series using the sum-based formula
//
//	r = (nΣxy − ΣxΣy) / sqrt((nΣx² − (Σx)²)(nΣy² − (Σy)²))
//
// A zero denominator (zero variance in either series, or empty input)
// yields 0, never NaN.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	fn := float64(n)
	denominator := math.Sqrt((fn*sumX2 - sumX*sumX) * (fn*sumY2 - sumY*sumY))
	if denominator == 0 {
		return 0
	}
	return (fn*sumXY - sumX*sumY) / denominator
}

// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package analytics

// movingAverageWindow is the maximum trailing window size for moving
// averages; series shorter than this use their full length.
const movingAverageWindow = 7

// TrendSeries holds the per-metric time series derived from an ordered
// bucket list. All slices are parallel to TimePoints.
type TrendSeries struct {
	TimePoints []string `json:"timePoints"`

	// Metrics holds raw per-bucket values, keyed by metric name.
	// acceptanceRate is derived once per bucket and reused for the moving
	// average and growth rate, never recomputed from averaged values.
	Metrics map[string][]float64 `json:"metrics"`

	// MovingAverages holds the trailing moving average, window min(7, N).
	MovingAverages map[string][]float64 `json:"movingAverages"`

	// GrowthRates holds point-to-point growth percentages. The first
	// element is always nil: there is no prior point.
	GrowthRates map[string][]*float64 `json:"growthRates"`

	// Totals holds whole-series sums; acceptanceRate's total is the
	// overall rate computed from the summed counts.
	Totals map[string]float64 `json:"totals"`
}

// trendMetrics is the set of series a TrendSeries carries.
var trendMetrics = []string{
	MetricAICodeLines,
	MetricChatInteractions,
	MetricInlineSuggestions,
	MetricInlineAcceptances,
	MetricAcceptanceRate,
}

// ComputeTrends derives the trend series from buckets sorted ascending.
// Empty input yields empty series and zero totals, never nil maps.
func ComputeTrends(buckets []Bucket) TrendSeries {
	n := len(buckets)
	series := TrendSeries{
		TimePoints:     make([]string, n),
		Metrics:        make(map[string][]float64, len(trendMetrics)),
		MovingAverages: make(map[string][]float64, len(trendMetrics)),
		GrowthRates:    make(map[string][]*float64, len(trendMetrics)),
		Totals:         make(map[string]float64, len(trendMetrics)),
	}

	raw := make(map[string][]float64, len(trendMetrics))
	for _, m := range trendMetrics {
		raw[m] = make([]float64, n)
	}

	var totalSuggestions, totalAcceptances float64
	for i, b := range buckets {
		series.TimePoints[i] = b.Key
		for _, m := range CoreMetrics {
			raw[m][i] = b.MetricValue(m)
		}
		raw[MetricAcceptanceRate][i] = b.AcceptanceRate()
		totalSuggestions += float64(b.InlineSuggestions)
		totalAcceptances += float64(b.InlineAcceptances)
	}

	for _, m := range trendMetrics {
		values := raw[m]
		series.Metrics[m] = values
		series.MovingAverages[m] = movingAverage(values)
		series.GrowthRates[m] = growthRates(values)
	}

	for _, m := range CoreMetrics {
		series.Totals[m] = sum(raw[m])
	}
	if totalSuggestions > 0 {
		series.Totals[MetricAcceptanceRate] = 100 * totalAcceptances / totalSuggestions
	} else {
		series.Totals[MetricAcceptanceRate] = 0
	}

	return series
}

// movingAverage computes the right-aligned trailing average with window
// min(movingAverageWindow, len(values)). At index 0 this degenerates to
// the value itself.
func movingAverage(values []float64) []float64 {
	n := len(values)
	out := make([]float64, n)
	window := movingAverageWindow
	if n < window {
		window = n
	}

	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		var total float64
		for _, v := range values[start : i+1] {
			total += v
		}
		out[i] = total / float64(i+1-start)
	}
	return out
}

// growthRates computes point-to-point growth percentages; index 0 is nil.
func growthRates(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := 1; i < len(values); i++ {
		rate := GrowthRate(values[i-1], values[i])
		out[i] = &rate
	}
	return out
}

// GrowthRate returns the percentage change from previous to current.
// A zero previous value yields 100 when current is positive and 0
// otherwise, so a division-by-zero never escapes to the response. The
// same convention backs PercentageChange for adoption comparisons.
func GrowthRate(previous, current float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

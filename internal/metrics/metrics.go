// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Store metrics
	StoreScanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_scan_duration_seconds",
			Help:    "Duration of BadgerDB prefix scans in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"keyspace"},
	)

	StoreRecordsScanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_records_scanned_total",
			Help: "Total number of records read from BadgerDB scans",
		},
		[]string{"keyspace"},
	)

	StoreWriteErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_write_errors_total",
			Help: "Total number of failed BadgerDB writes",
		},
		[]string{"keyspace"},
	)

	// Export metrics
	ExportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exports_generated_total",
			Help: "Total number of CSV exports generated",
		},
		[]string{"type"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordStoreScan records a completed prefix scan over one keyspace.
func RecordStoreScan(keyspace string, records int, duration time.Duration) {
	StoreScanDuration.WithLabelValues(keyspace).Observe(duration.Seconds())
	StoreRecordsScanned.WithLabelValues(keyspace).Add(float64(records))
}

// SPDX-License-Identifier: MIT

// Package metrics provides Prometheus metrics for the hyperlog backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WindowRequestsTotal counts window-read requests by dialect and outcome.
	WindowRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hyperlog_window_requests_total",
		Help: "Total number of log window requests, by dialect and outcome.",
	}, []string{"dialect", "outcome"})

	// LinesReturnedTotal counts raw lines handed to the reconstructor.
	LinesReturnedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hyperlog_lines_returned_total",
		Help: "Total number of raw lines extracted from log windows.",
	})

	// EntriesReconstructedTotal counts top-level entries produced, by dialect.
	EntriesReconstructedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hyperlog_entries_reconstructed_total",
		Help: "Total number of top-level log entries reconstructed, by dialect.",
	}, []string{"dialect"})

	// ParseDuration observes the combined read-and-reconstruct latency.
	ParseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hyperlog_parse_duration_seconds",
		Help:    "Time spent reading a window and reconstructing its entries.",
		Buckets: prometheus.DefBuckets,
	})

	// FileRequestDeniedTotal counts denied static file requests by reason.
	FileRequestDeniedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hyperlog_file_request_denied_total",
		Help: "Total number of denied static file requests, by reason.",
	}, []string{"reason"})

	// FileCacheTotal counts static file cache validations by result.
	FileCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hyperlog_file_cache_total",
		Help: "Total number of static file cache validations, by result (hit/miss).",
	}, []string{"result"})
)

// RecordWindowRequest records one window request.
func RecordWindowRequest(dialect, outcome string) {
	WindowRequestsTotal.WithLabelValues(dialect, outcome).Inc()
}

// RecordParse records the yield of one successful parse.
func RecordParse(dialect string, lines, entries int, seconds float64) {
	LinesReturnedTotal.Add(float64(lines))
	EntriesReconstructedTotal.WithLabelValues(dialect).Add(float64(entries))
	ParseDuration.Observe(seconds)
}

// RecordFileRequestDenied records a denied static file request.
func RecordFileRequestDenied(reason string) {
	FileRequestDeniedTotal.WithLabelValues(reason).Inc()
}

// RecordFileCacheHit records an ETag revalidation hit.
func RecordFileCacheHit() {
	FileCacheTotal.WithLabelValues("hit").Inc()
}

// RecordFileCacheMiss records an ETag revalidation miss.
func RecordFileCacheMiss() {
	FileCacheTotal.WithLabelValues("miss").Inc()
}

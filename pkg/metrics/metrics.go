package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ExtractionsTotal    *prometheus.CounterVec
	MediaRecordsTotal   prometheus.Counter
	DecodeFailuresTotal prometheus.Counter
	ArchiveBuildsTotal  prometheus.Counter
	ExtractionDuration  prometheus.Histogram
)

func Init() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "har_extractions_total",
			Help: "Total number of HAR extraction attempts.",
		},
		[]string{"status"}, // completed, no_media_found, failed
	)

	MediaRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "har_media_records_total",
			Help: "Total number of media records extracted from HAR captures.",
		},
	)

	DecodeFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "har_decode_failures_total",
			Help: "Total number of records dropped because their content failed to decode.",
		},
	)

	ArchiveBuildsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "har_archive_builds_total",
			Help: "Total number of media.zip archives built.",
		},
	)

	ExtractionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "har_extraction_duration_seconds",
			Help:    "Duration of a single HAR extraction pass.",
			Buckets: []float64{.005, .01, .05, .1, .5, 1, 5},
		},
	)
}

// Package metrics defines the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tianguistore_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tianguistore_http_request_duration_seconds",
			Help:    "Time taken to handle HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
	)

	PanicsRecovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tianguistore_panics_recovered_total",
			Help: "Total number of request panics recovered by the error boundary",
		},
	)

	RequestsRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tianguistore_requests_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

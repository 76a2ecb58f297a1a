package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Queued notification emails by outcome.
	EmailQueuedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_queued_count",
			Help: "Total number of notification emails queued",
		},
		[]string{"kind"}, // kind: contact, request
	)
)

// RecordHTTPRequestDuration records one request observation.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementEmailQueued increments the queued email counter.
func IncrementEmailQueued(kind string) {
	EmailQueuedCount.WithLabelValues(kind).Inc()
}

// Package metrics provides Prometheus metrics for the gurtle leaderboard
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager owns the Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Submission outcomes
	submissionsAccepted prometheus.Counter
	submissionsRejected prometheus.Counter

	// Store health
	storeQueryLatency  prometheus.Histogram
	storeInsertLatency prometheus.Histogram
	storeErrors        *prometheus.CounterVec
	entriesTotal       prometheus.Gauge
}

// Default histogram buckets in milliseconds, tuned for a store round trip.
var defaultBuckets = []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000, 2500}

var defaultManager *Manager

func init() { //nolint:gochecknoinits // global metrics setup
	defaultManager = NewManager()
}

// NewManager creates a Manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gurtle",
		subsystem:        "leaderboard",
		histogramBuckets: defaultBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := func(name, help string) prometheus.Opts {
		return prometheus.Opts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      name,
			Help:      help,
		}
	}

	m.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts(factory("http_requests_total", "HTTP requests by endpoint, method and status.")),
		[]string{"endpoint", "method", "status"},
	)
	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request duration in milliseconds.",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)
	m.submissionsAccepted = prometheus.NewCounter(
		prometheus.CounterOpts(factory("submissions_accepted_total", "Score submissions accepted and stored.")),
	)
	m.submissionsRejected = prometheus.NewCounter(
		prometheus.CounterOpts(factory("submissions_rejected_total", "Score submissions rejected on hash mismatch.")),
	)
	m.storeQueryLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_query_latency_ms",
		Help:      "Read query latency against the score store in milliseconds.",
		Buckets:   m.histogramBuckets,
	})
	m.storeInsertLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_insert_latency_ms",
		Help:      "Insert latency against the score store in milliseconds.",
		Buckets:   m.histogramBuckets,
	})
	m.storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts(factory("store_errors_total", "Store operation failures by operation.")),
		[]string{"operation"},
	)
	m.entriesTotal = prometheus.NewGauge(
		prometheus.GaugeOpts(factory("entries_total", "Number of entries currently stored.")),
	)

	m.registry.MustRegister(
		m.httpRequests,
		m.httpRequestDuration,
		m.submissionsAccepted,
		m.submissionsRejected,
		m.storeQueryLatency,
		m.storeInsertLatency,
		m.storeErrors,
		m.entriesTotal,
	)
}

// Package-level helpers delegate to the default manager.

// RecordHTTPRequest increments the request counter.
func RecordHTTPRequest(endpoint, method, status string) {
	defaultManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes a request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	defaultManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

// RecordSubmissionAccepted counts a stored submission.
func RecordSubmissionAccepted() {
	defaultManager.submissionsAccepted.Inc()
}

// RecordSubmissionRejected counts a hash-mismatch rejection.
func RecordSubmissionRejected() {
	defaultManager.submissionsRejected.Inc()
}

// RecordStoreQueryLatency observes a read query latency in milliseconds.
func RecordStoreQueryLatency(latencyMs float64) {
	defaultManager.storeQueryLatency.Observe(latencyMs)
}

// RecordStoreInsertLatency observes an insert latency in milliseconds.
func RecordStoreInsertLatency(latencyMs float64) {
	defaultManager.storeInsertLatency.Observe(latencyMs)
}

// RecordStoreError counts a store failure for the named operation.
func RecordStoreError(operation string) {
	defaultManager.storeErrors.WithLabelValues(operation).Inc()
}

// UpdateEntriesTotal sets the stored-entries gauge.
func UpdateEntriesTotal(count int64) {
	defaultManager.entriesTotal.Set(float64(count))
}

// GetRegistry exposes the default registry for the exposition endpoint.
func GetRegistry() *prometheus.Registry {
	return defaultManager.registry
}

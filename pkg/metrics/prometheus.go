// Package metrics provides Prometheus metrics for the fitscore engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus metrics for the scoring engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Scoring throughput and latency
	assessmentsScored  prometheus.Counter
	testsScored        *prometheus.CounterVec
	evaluationDuration prometheus.Histogram

	// Standards lookup quality
	standardsCacheHits   prometheus.Counter
	standardsCacheMisses prometheus.Counter
	standardsFallbacks   *prometheus.CounterVec
	standardsErrors      prometheus.Counter

	// Risk distribution
	riskLevels *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "fitscore",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.assessmentsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "assessments_scored_total",
		Help:      "Total number of full assessments evaluated",
	})

	m.testsScored = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tests_scored_total",
		Help:      "Total number of individual test scores computed, by test type",
	}, []string{"test"})

	m.evaluationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluation_duration_milliseconds",
		Help:      "Histogram of full-assessment evaluation duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.standardsCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "standards_cache_hits_total",
		Help:      "Total number of standards lookups served from the cache",
	})

	m.standardsCacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "standards_cache_misses_total",
		Help:      "Total number of standards lookups that missed the cache",
	})

	m.standardsFallbacks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "standards_fallbacks_total",
		Help:      "Total number of lookups that degraded to the static tables, by test type",
	}, []string{"test"})

	m.standardsErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "standards_errors_total",
		Help:      "Total number of errors from the backing standards store",
	})

	m.riskLevels = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "risk_levels_total",
		Help:      "Total number of computed risk reports, by overall risk level",
	}, []string{"level"})
}

// Registry returns the registry metrics are registered on. Exposing it lets
// an embedding application mount a /metrics handler if it wants one.
func Registry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers recording on the global manager.

// RecordAssessmentScored increments the full-assessment counter.
func RecordAssessmentScored() {
	if globalManager.enabled {
		globalManager.assessmentsScored.Inc()
	}
}

// RecordTestScored increments the per-test counter.
func RecordTestScored(test string) {
	if globalManager.enabled {
		globalManager.testsScored.WithLabelValues(test).Inc()
	}
}

// RecordEvaluationDuration observes a full-evaluation duration in milliseconds.
func RecordEvaluationDuration(ms float64) {
	if globalManager.enabled {
		globalManager.evaluationDuration.Observe(ms)
	}
}

// RecordStandardsCacheHit increments the cache-hit counter.
func RecordStandardsCacheHit() {
	if globalManager.enabled {
		globalManager.standardsCacheHits.Inc()
	}
}

// RecordStandardsCacheMiss increments the cache-miss counter.
func RecordStandardsCacheMiss() {
	if globalManager.enabled {
		globalManager.standardsCacheMisses.Inc()
	}
}

// RecordStandardsFallback increments the static-table fallback counter.
func RecordStandardsFallback(test string) {
	if globalManager.enabled {
		globalManager.standardsFallbacks.WithLabelValues(test).Inc()
	}
}

// RecordStandardsError increments the backing-store error counter.
func RecordStandardsError() {
	if globalManager.enabled {
		globalManager.standardsErrors.Inc()
	}
}

// RecordRiskLevel increments the risk-level counter.
func RecordRiskLevel(level string) {
	if globalManager.enabled {
		globalManager.riskLevels.WithLabelValues(level).Inc()
	}
}

// Package metrics provides Prometheus metrics for the podium feature batch.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for one batch process.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         prometheus.Registerer
	gatherer         prometheus.Gatherer

	// Input
	rowsRead         prometheus.Counter
	rowsInvalidYear  prometheus.Counter
	hostFlaggedRows  prometheus.Counter
	inputReadLatency prometheus.Histogram

	// Derivation
	passDuration      *prometheus.HistogramVec
	passOutputSize    *prometheus.GaugeVec
	lookbackFallbacks prometheus.Counter

	// Output
	featureRowsWritten prometheus.Counter
	outputWriteLatency *prometheus.HistogramVec

	// Run
	runErrors      *prometheus.CounterVec
	runDuration    prometheus.Gauge
	lastSuccessUTC prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "podium",
		subsystem:        "features",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		constLabels:      make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
		gatherer:         prometheus.DefaultGatherer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one block per metric
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.constLabels)

	m.rowsRead = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "input_rows_total",
		Help:        "Total number of appearance rows read from the input",
		ConstLabels: labels,
	})

	m.rowsInvalidYear = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "input_rows_invalid_year_total",
		Help:        "Total number of input rows whose year could not be parsed",
		ConstLabels: labels,
	})

	m.hostFlaggedRows = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "input_rows_host_total",
		Help:        "Total number of input rows carrying the host flag",
		ConstLabels: labels,
	})

	m.inputReadLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "input_read_duration_seconds",
		Help:        "Time spent decoding and parsing the input",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.passDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "pass_duration_seconds",
			Help:        "Duration of each aggregation pass",
			Buckets:     m.histogramBuckets,
			ConstLabels: labels,
		},
		[]string{"pass"},
	)

	m.passOutputSize = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "pass_entries",
			Help:        "Number of entries produced by the last run of each pass",
			ConstLabels: labels,
		},
		[]string{"pass"},
	)

	m.lookbackFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "lookback_fallbacks_total",
		Help:        "Rows whose star/rising lookback fell back to zero",
		ConstLabels: labels,
	})

	m.featureRowsWritten = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "output_rows_total",
		Help:        "Total number of feature rows written",
		ConstLabels: labels,
	})

	m.outputWriteLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "output_write_duration_seconds",
			Help:        "Time spent writing the feature table by output format",
			Buckets:     m.histogramBuckets,
			ConstLabels: labels,
		},
		[]string{"format"},
	)

	m.runErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "run_errors_total",
			Help:        "Runs that failed, by stage",
			ConstLabels: labels,
		},
		[]string{"stage"},
	)

	m.runDuration = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "run_duration_seconds",
		Help:        "Wall time of the last completed run",
		ConstLabels: labels,
	})

	m.lastSuccessUTC = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "last_success_timestamp_seconds",
		Help:        "Unix time of the last successful run",
		ConstLabels: labels,
	})
}

// RecordInput records the profile of one input read.
func (m *Manager) RecordInput(rows, invalidYears, hostRows int, elapsed time.Duration) {
	if !m.enabled {
		return
	}
	m.rowsRead.Add(float64(rows))
	m.rowsInvalidYear.Add(float64(invalidYears))
	m.hostFlaggedRows.Add(float64(hostRows))
	m.inputReadLatency.Observe(elapsed.Seconds())
}

// RecordPass records the duration and output size of an aggregation pass.
func (m *Manager) RecordPass(pass string, elapsed time.Duration, produced int) {
	if !m.enabled {
		return
	}
	m.passDuration.WithLabelValues(pass).Observe(elapsed.Seconds())
	m.passOutputSize.WithLabelValues(pass).Set(float64(produced))
}

// RecordLookbackFallback increments the lookback fallback counter.
func (m *Manager) RecordLookbackFallback() {
	if !m.enabled {
		return
	}
	m.lookbackFallbacks.Inc()
}

// RecordOutput records a completed write of the feature table.
func (m *Manager) RecordOutput(format string, rows int, elapsed time.Duration) {
	if !m.enabled {
		return
	}
	m.featureRowsWritten.Add(float64(rows))
	m.outputWriteLatency.WithLabelValues(format).Observe(elapsed.Seconds())
}

// RecordRunError increments the error counter for stage.
func (m *Manager) RecordRunError(stage string) {
	if !m.enabled {
		return
	}
	m.runErrors.WithLabelValues(stage).Inc()
}

// RecordRunSuccess records the wall time and completion time of a run.
func (m *Manager) RecordRunSuccess(elapsed time.Duration, finished time.Time) {
	if !m.enabled {
		return
	}
	m.runDuration.Set(elapsed.Seconds())
	m.lastSuccessUTC.Set(float64(finished.Unix()))
}

// WriteTextfile writes every gathered metric to path in the Prometheus text
// exposition format, for node_exporter's textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.gatherer); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteTextfile, path, err)
	}
	return nil
}

// Global returns the process-wide manager.
func Global() *Manager {
	return globalManager
}

package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Metrics collects Prometheus metrics for groupforge computations.
// A disabled Metrics value is a safe no-op.
type Metrics struct {
	config MetricsConfig

	computationsStarted   *prometheus.CounterVec
	computationsCompleted *prometheus.CounterVec
	computationDuration   *prometheus.HistogramVec

	cauchyInvocations *prometheus.CounterVec
	sylowSteps        prometheus.Counter
	tupleSpaceSize    prometheus.Histogram

	errorsByCode *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates a metrics collector.
func NewMetrics(cfg MetricsConfig) *Metrics {
	if !cfg.Enabled {
		return &Metrics{config: cfg}
	}

	registry := prometheus.NewRegistry()
	namespace := cfg.Namespace

	m := &Metrics{
		config:   cfg,
		registry: registry,

		computationsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "computations_started_total",
				Help:      "Total number of computations started",
			},
			[]string{"kind"},
		),
		computationsCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "computations_completed_total",
				Help:      "Total number of computations completed",
			},
			[]string{"kind", "status"},
		),
		computationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "computation_duration_seconds",
				Help:      "Duration of computations in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		cauchyInvocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cauchy_invocations_total",
				Help:      "Total number of Cauchy constructions, by prime",
			},
			[]string{"prime"},
		),
		sylowSteps: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sylow_steps_total",
				Help:      "Total number of Sylow induction steps",
			},
		),
		tupleSpaceSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tuple_space_size",
				Help:      "Size of product-one tuple spaces",
				Buckets:   prometheus.ExponentialBuckets(1, 8, 10),
			},
		),
		errorsByCode: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of errors, by code",
			},
			[]string{"code"},
		),
	}

	registry.MustRegister(
		m.computationsStarted,
		m.computationsCompleted,
		m.computationDuration,
		m.cauchyInvocations,
		m.sylowSteps,
		m.tupleSpaceSize,
		m.errorsByCode,
	)
	return m
}

// ComputationStarted records the start of a computation of the given
// kind ("element" or "subgroup").
func (m *Metrics) ComputationStarted(kind string) {
	if m.registry == nil {
		return
	}
	m.computationsStarted.WithLabelValues(kind).Inc()
}

// ComputationCompleted records a finished computation and its duration.
func (m *Metrics) ComputationCompleted(kind, status string, duration time.Duration) {
	if m.registry == nil {
		return
	}
	m.computationsCompleted.WithLabelValues(kind, status).Inc()
	m.computationDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// CauchyInvoked records one Cauchy construction.
func (m *Metrics) CauchyInvoked(prime string, tupleSpace int) {
	if m.registry == nil {
		return
	}
	m.cauchyInvocations.WithLabelValues(prime).Inc()
	m.tupleSpaceSize.Observe(float64(tupleSpace))
}

// SylowStep records one induction step.
func (m *Metrics) SylowStep() {
	if m.registry == nil {
		return
	}
	m.sylowSteps.Inc()
}

// ErrorRecorded records an error by code.
func (m *Metrics) ErrorRecorded(code string) {
	if m.registry == nil {
		return
	}
	m.errorsByCode.WithLabelValues(code).Inc()
}

// Handler returns an HTTP handler exposing the metrics, or nil when
// metrics are disabled.
func (m *Metrics) Handler() http.Handler {
	if m.registry == nil {
		return nil
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gather returns the current metric families, for tests and one-shot
// reporting. It returns nil when metrics are disabled.
func (m *Metrics) Gather() ([]*dto.MetricFamily, error) {
	if m.registry == nil {
		return nil, nil
	}
	return m.registry.Gather()
}

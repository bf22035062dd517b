package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	recordsNormalized    *prometheus.CounterVec
	normalizeDuration    prometheus.Histogram
	importRowsTotal      prometheus.Counter
	importsTotal         *prometheus.CounterVec
	insightsComputations prometheus.Counter
	insightsDuration     prometheus.Histogram
	insightsBatchSize    prometheus.Gauge
	aggregatorRequests   *prometheus.CounterVec
	assistantRequests    *prometheus.CounterVec
	assistantDuration    prometheus.Histogram
	linkTokensIssued     *prometheus.CounterVec
	circuitBreakerState  *prometheus.GaugeVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		recordsNormalized: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "records_normalized_total",
				Help: "Total number of raw records normalized into transactions",
			},
			[]string{"source"},
		),
		normalizeDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "normalize_batch_duration_milliseconds",
				Help:    "Batch normalization duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		importRowsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "import_rows_total",
				Help: "Total number of rows read from delimited imports",
			},
		),
		importsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "imports_total",
				Help: "Total number of delimited file imports",
			},
			[]string{"status"},
		),
		insightsComputations: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "insights_computations_total",
				Help: "Total number of insights aggregations computed",
			},
		),
		insightsDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insights_computation_duration_milliseconds",
				Help:    "Insights computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		insightsBatchSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "insights_batch_size",
				Help: "Size of the most recent insights input batch",
			},
		),
		aggregatorRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aggregator_requests_total",
				Help: "Total number of aggregator API requests",
			},
			[]string{"operation", "status"},
		),
		assistantRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assistant_requests_total",
				Help: "Total number of assistant chat requests",
			},
			[]string{"status"},
		),
		assistantDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "assistant_request_duration_milliseconds",
				Help:    "Assistant request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		linkTokensIssued: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "link_tokens_issued_total",
				Help: "Total number of link and public tokens issued",
			},
			[]string{"token_type"},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	source := tags["source"]
	status := tags["status"]

	switch name {
	case "records.normalized":
		if source != "" {
			m.recordsNormalized.WithLabelValues(source).Inc()
		}
	case "import.rows":
		m.importRowsTotal.Inc()
	case "import.completed":
		m.importsTotal.WithLabelValues("success").Inc()
	case "import.failed":
		m.importsTotal.WithLabelValues("failed").Inc()
	case "insights.computed":
		m.insightsComputations.Inc()
	case "aggregator.request":
		m.aggregatorRequests.WithLabelValues(tags["operation"], status).Inc()
	case "assistant.request":
		if status != "" {
			m.assistantRequests.WithLabelValues(status).Inc()
		}
	case "link_token.issued":
		if tokenType := tags["token_type"]; tokenType != "" {
			m.linkTokensIssued.WithLabelValues(tokenType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "normalize.batch":
		m.normalizeDuration.Observe(float64(duration.Milliseconds()))
	case "insights.computation":
		m.insightsDuration.Observe(float64(duration.Milliseconds()))
	case "assistant.request":
		m.assistantDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "insights.batch_size":
		m.insightsBatchSize.Set(value)
	case "circuit_breaker.state":
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}

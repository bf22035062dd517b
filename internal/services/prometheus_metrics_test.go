package services

import (
	"testing"
	"time"
)

// The recorder registers its collectors with the default registry, so it is
// constructed exactly once for the whole test binary.
func TestPrometheusMetricsDispatch(t *testing.T) {
	metrics := NewPrometheusMetrics()

	// Counter names route to their collectors; unknown names are no-ops.
	metrics.IncrementCounter("records.normalized", map[string]string{"source": "csv"})
	metrics.IncrementCounter("records.normalized", map[string]string{"source": "aggregator"})
	metrics.IncrementCounter("import.rows", nil)
	metrics.IncrementCounter("import.completed", nil)
	metrics.IncrementCounter("import.failed", nil)
	metrics.IncrementCounter("insights.computed", nil)
	metrics.IncrementCounter("aggregator.request", map[string]string{"operation": "get_transactions", "status": "success"})
	metrics.IncrementCounter("assistant.request", map[string]string{"status": "success"})
	metrics.IncrementCounter("link_token.issued", map[string]string{"token_type": "link"})
	metrics.IncrementCounter("not.a.known.counter", nil)

	metrics.RecordProcessingTime("normalize.batch", 12*time.Millisecond)
	metrics.RecordProcessingTime("insights.computation", 3*time.Millisecond)
	metrics.RecordProcessingTime("assistant.request", 450*time.Millisecond)
	metrics.RecordProcessingTime("not.a.known.timer", time.Millisecond)

	metrics.RecordGauge("insights.batch_size", 42, nil)
	metrics.RecordGauge("circuit_breaker.state", 1, map[string]string{"service": "aggregator"})
	metrics.RecordGauge("not.a.known.gauge", 0, nil)
}

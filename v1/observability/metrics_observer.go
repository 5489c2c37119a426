package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/dal/v1/metrics"
)

// MetricsObserver turns operation reports into Prometheus series: an
// operation counter labelled by component, operation, resource and status,
// and a latency histogram labelled by component and operation.
type MetricsObserver struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetricsObserver registers the observer's collectors against the given
// metrics registry.
func NewMetricsObserver(m *metrics.Metrics) *MetricsObserver {
	return &MetricsObserver{
		operations: m.CreateCounter("operations_total",
			"Total number of observed component operations",
			[]string{"component", "operation", "resource", "status"}),
		duration: m.CreateHistogram("operation_duration_seconds",
			"Duration of observed component operations in seconds",
			[]string{"component", "operation"}, prometheus.DefBuckets),
	}
}

// ObserveOperation implements Observer.
func (o *MetricsObserver) ObserveOperation(ctx OperationContext) {
	status := "success"
	if ctx.Error != nil {
		status = "error"
	}
	o.operations.WithLabelValues(ctx.Component, ctx.Operation, ctx.Resource, status).Inc()
	o.duration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector provides an interface for collecting and exposing
// application metrics. It abstracts Prometheus metric operations with
// support for counters, histograms, and gauges.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	// Default metric methods

	// IncrementQueries increments the query counter for a datasource,
	// operation and outcome status.
	IncrementQueries(datasource, operation, status string)

	// RecordQueryDuration records the elapsed time since start for a query
	// against a datasource.
	RecordQueryDuration(start time.Time, datasource, operation string)

	// SetOpenConnections sets the open connection gauge for a datasource.
	SetOpenConnections(value float64, datasource, backend string)

	// Dynamic metric factories

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates a new GaugeVec metric and registers it.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IncrementQueries increments the query counter for a datasource, operation
// and outcome status.
// Example: metrics.IncrementQueries("primary", "find_all", "success")
func (m *Metrics) IncrementQueries(datasource, operation, status string) {
	m.queriesTotal.WithLabelValues(datasource, operation, status).Inc()
}

// RecordQueryDuration records the elapsed time since start for a query
// against a datasource.
// Example: defer metrics.RecordQueryDuration(time.Now(), "primary", "find_all")
func (m *Metrics) RecordQueryDuration(start time.Time, datasource, operation string) {
	duration := time.Since(start).Seconds()
	m.queryDuration.WithLabelValues(datasource, operation).Observe(duration)
}

// SetOpenConnections sets the open connection gauge for a datasource.
// Example: metrics.SetOpenConnections(4, "primary", "postgres")
func (m *Metrics) SetOpenConnections(value float64, datasource, backend string) {
	m.openConnections.WithLabelValues(datasource, backend).Set(value)
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	c := createCounterVec(name, help, labels)
	m.registerer.MustRegister(c)
	return c
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	h := createHistogramVec(name, help, labels, buckets)
	m.registerer.MustRegister(h)
	return h
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	g := createGaugeVec(name, help, labels)
	m.registerer.MustRegister(g)
	return g
}

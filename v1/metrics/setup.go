package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric
	// name collisions.
	Registry *prometheus.Registry

	// registerer is the service-labelled view of Registry; the Create*
	// factories register through it.
	registerer prometheus.Registerer

	// Core built-in metrics
	queriesTotal    *prometheus.CounterVec
	queryDuration   *prometheus.HistogramVec
	openConnections *prometheus.GaugeVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers the built-in query
// metrics and optional default system collectors, wraps all metrics with a
// constant `service` label, and creates an HTTP server exposing the
// /metrics endpoint.
//
// Access metrics at: http://<cfg.Address>/metrics
func NewMetrics(cfg Config) *Metrics {
	// A new isolated registry avoids metric collisions when multiple
	// services run in the same process.
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically include the label
	// service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrappedRegistry,
	}

	m.queriesTotal = createCounterVec("queries_total",
		"Total number of executed statements",
		[]string{"datasource", "operation", "status"})
	m.queryDuration = createHistogramVec("query_duration_seconds",
		"Duration of executed statements in seconds",
		[]string{"datasource", "operation"}, prometheus.DefBuckets)
	m.openConnections = createGaugeVec("open_connections",
		"Open connections per datasource",
		[]string{"datasource", "backend"})

	wrappedRegistry.MustRegister(
		m.queriesTotal,
		m.queryDuration,
		m.openConnections,
	)

	// GoCollector covers memory, goroutines and GC stats; ProcessCollector
	// covers CPU, file descriptors and memory; BuildInfoCollector covers
	// binary version info.
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}
	return m
}

func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)
}

func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    name,
		Help:    help,
		Buckets: buckets,
	}, labels)
}

func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: name,
		Help: help,
	}, labels)
}

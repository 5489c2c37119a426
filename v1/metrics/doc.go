// Package metrics provides Prometheus-based monitoring for the data access
// layer.
//
// It maintains an isolated Prometheus registry, serves it over a /metrics
// HTTP endpoint, and ships built-in collectors for the query path: a query
// counter labelled by datasource, operation and status, a query latency
// histogram, and a gauge tracking open datasource connections. Applications
// can register further collectors through the Create* factories or directly
// against the exposed Registry.
//
// # Direct Usage (Without FX)
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		ServiceName:             "dal",
//		EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
//
//	m.IncrementQueries("primary", "find_all", "success")
//	defer m.RecordQueryDuration(time.Now(), "primary", "find_all")
//
// # FX Module Integration
//
// FXModule provides *Metrics and manages the HTTP server's lifecycle: the
// server starts on application start and shuts down gracefully on stop. A
// metrics.Config must be available in the container.
//
// # Thread Safety
//
// All methods on the Metrics struct and Prometheus collectors are safe for
// concurrent use by multiple goroutines.
package metrics

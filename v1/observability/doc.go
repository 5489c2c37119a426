// Package observability defines the operation observer contract shared by
// the infrastructure packages. Components report each finished operation as
// an OperationContext; an Observer implementation turns those reports into
// metrics, traces or test assertions.
//
// The package ships two implementations: NoopObserver for when no sink is
// wanted, and MetricsObserver which feeds operation counts and latencies
// into a metrics.Metrics registry.
package observability

package metrics

// Config controls the registry and the /metrics server. The env tags are
// for the embedding application's environment loader; this package only
// reads the struct.
type Config struct {
	// Address is the listen address of the /metrics endpoint.
	Address string `yaml:"address" env:"METRICS_ADDRESS"`

	// ServiceName is applied to every metric as a constant "service" label.
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go runtime, process and build
	// info collectors alongside the built-in query metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_ENABLE_DEFAULT_COLLECTORS"`
}

package tracer

// Config controls tracer provider construction. The env tags are for the
// embedding application's environment loader; this package only reads the
// struct.
type Config struct {
	// ServiceName identifies this service in exported traces.
	ServiceName string `yaml:"service_name" env:"TRACER_SERVICE_NAME"`

	// AppEnv is recorded as the deployment environment resource attribute.
	AppEnv string `yaml:"app_env" env:"APP_ENV"`

	// EnableExport ships spans through an OTLP HTTP exporter. The exporter
	// endpoint is taken from the standard OTEL_EXPORTER_OTLP_* variables.
	EnableExport bool `yaml:"enable_export" env:"TRACER_ENABLE_EXPORT"`
}

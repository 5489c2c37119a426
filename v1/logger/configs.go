package logger

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls logger construction. The env tags are for the embedding
// application's environment loader; this package only reads the struct.
type Config struct {
	// 1. production -> INFO
	// 2. development -> DEBUG
	// else -> INFO
	Level string `yaml:"level" env:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"LOGGER_SERVICE_NAME"`

	// EnableTracing makes the *WithContext methods attach trace_id and
	// span_id extracted from the context.
	EnableTracing bool `yaml:"enable_tracing" env:"LOGGER_ENABLE_TRACING"`
}

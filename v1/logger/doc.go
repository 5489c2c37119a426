// Package logger provides structured logging for the data access layer.
//
// It wraps Uber's Zap logger behind a small surface: leveled methods taking
// a message, an optional error and optional field maps, plus *WithContext
// variants that extract OpenTelemetry trace and span IDs from the context
// when tracing is enabled.
//
// Basic usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       "info",
//		ServiceName: "dal",
//	})
//	log.Info("datasource resolved", nil, map[string]interface{}{
//		"datasource": "primary",
//		"backend":    "postgres",
//	})
//
// Applications built on fx can pull the logger in through FXModule, which
// provides the client and flushes buffered entries on shutdown.
//
// Thread Safety:
//
// All methods are safe for concurrent use by multiple goroutines.
package logger

// Package tracer provides distributed tracing for the data access layer
// using OpenTelemetry.
//
// It wraps the OpenTelemetry tracer provider behind a small API: StartSpan
// to open a span, RecordErrorOnSpan to mark failures, SetAttributes to
// attach typed metadata, and GetCarrier/SetCarrierOnContext to propagate
// trace context across service boundaries. When export is enabled, spans
// are shipped through an OTLP HTTP exporter.
//
// Basic usage:
//
//	tr := tracer.NewClient(tracer.Config{
//		ServiceName:  "dal",
//		AppEnv:       "development",
//		EnableExport: false,
//	}, log)
//
//	ctx, span := tr.StartSpan(ctx, "datasource.query")
//	defer span.End()
//
//	if err != nil {
//		tr.RecordErrorOnSpan(span, err)
//	}
//
// FXModule wires the tracer into fx applications and shuts the provider
// down on application stop, flushing pending spans.
//
// Thread Safety:
//
// All methods on the Tracer type are safe for concurrent use by multiple
// goroutines.
package tracer

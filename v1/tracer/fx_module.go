package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the tracer into an fx application. It provides the Tracer
// through NewClient and registers a shutdown hook that flushes pending
// spans when the application stops.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers the shutdown hook for the tracer
// provider. This function is automatically invoked by FXModule.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			tracer.logger.Info("shutting down tracer...", nil, nil)
			if tracer.tracer == nil {
				tracer.logger.Warn("tracer was nil during shutdown", nil, nil)
				return nil
			}
			return tracer.tracer.Shutdown(ctx)
		},
	})
}

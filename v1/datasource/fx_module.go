package datasource

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/dal/v1/logger"
	"github.com/Aleph-Alpha/dal/v1/observability"
	"github.com/Aleph-Alpha/dal/v1/tracer"
)

// FXModule defines the Fx module for the datasource package.
//
// Dependencies required by this module:
// - A datasource.Config instance must be available in the dependency injection container
// - A *logger.Logger instance
// - A *tracer.Tracer and observability.Observer are attached when present
var FXModule = fx.Module("datasource",
	fx.Provide(NewResolverWithDI),
	fx.Invoke(RegisterDatasourceLifecycle),
)

// ResolverParams groups the dependencies needed to build the Resolver.
type ResolverParams struct {
	fx.In

	Config   Config
	Logger   *logger.Logger
	Tracer   *tracer.Tracer         `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewResolverWithDI builds the Resolver from injected dependencies and
// attaches the optional tracer and observer.
func NewResolverWithDI(params ResolverParams) (*Resolver, error) {
	r, err := NewResolver(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}
	if params.Tracer != nil {
		r.WithTracer(params.Tracer)
	}
	if params.Observer != nil {
		r.WithObserver(params.Observer)
	}
	return r, nil
}

// RegisterDatasourceLifecycle health-checks every datasource on application
// start and closes all pools on stop.
func RegisterDatasourceLifecycle(lc fx.Lifecycle, r *Resolver, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := r.HealthCheck(ctx); err != nil {
				log.Error("datasource health check failed", err, nil)
				return err
			}
			log.Info("datasources healthy", nil, map[string]interface{}{
				"datasources": r.Names(),
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			r.Close()
			return nil
		},
	})
}

package datasource

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/dal/v1/logger"
	"github.com/Aleph-Alpha/dal/v1/metrics"
	"github.com/Aleph-Alpha/dal/v1/observability"
	"github.com/Aleph-Alpha/dal/v1/tracer"
)

// Resolver holds every configured datasource, connected and ready. It is
// built once at startup; resolution afterwards is a map lookup and cannot
// fail for any name the configuration declared.
type Resolver struct {
	conns map[string]*Conn
	// order preserves declaration order; order[0] is the default.
	order []string
	log   *logger.Logger
}

// NewResolver connects every datasource in cfg. If any connection fails,
// already opened pools are closed and the error is returned.
func NewResolver(cfg Config, log *logger.Logger) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Resolver{
		conns: make(map[string]*Conn, len(cfg.Datasources)),
		log:   log,
	}
	for _, dsCfg := range cfg.Datasources {
		conn, err := newConn(context.Background(), dsCfg, log)
		if err != nil {
			r.Close()
			return nil, err
		}
		r.conns[dsCfg.Name] = conn
		r.order = append(r.order, dsCfg.Name)
	}
	return r, nil
}

// Resolve returns the datasource registered under name. An empty name
// resolves to the default datasource.
func (r *Resolver) Resolve(name string) (*Conn, error) {
	if name == "" {
		return r.Default()
	}
	conn, ok := r.conns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDatasource, name)
	}
	return conn, nil
}

// Default returns the first declared datasource.
func (r *Resolver) Default() (*Conn, error) {
	if len(r.order) == 0 {
		return nil, ErrNoDatasources
	}
	return r.conns[r.order[0]], nil
}

// Names returns the datasource names in declaration order.
func (r *Resolver) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// WithObserver attaches an observer to every datasource. Returns the
// Resolver for chaining.
func (r *Resolver) WithObserver(observer observability.Observer) *Resolver {
	for _, conn := range r.conns {
		conn.WithObserver(observer)
	}
	return r
}

// WithTracer attaches a tracer to every datasource. Returns the Resolver
// for chaining.
func (r *Resolver) WithTracer(t *tracer.Tracer) *Resolver {
	for _, conn := range r.conns {
		conn.WithTracer(t)
	}
	return r
}

// HealthCheck pings every datasource concurrently and returns the first
// failure.
func (r *Resolver) HealthCheck(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range r.order {
		conn := r.conns[name]
		g.Go(func() error {
			return conn.Ping(ctx)
		})
	}
	return g.Wait()
}

// PublishPoolStats updates the open connection gauge for every datasource.
// Call it periodically or on scrape to keep pool metrics current.
func (r *Resolver) PublishPoolStats(m *metrics.Metrics) {
	for _, name := range r.order {
		conn := r.conns[name]
		m.SetOpenConnections(float64(conn.OpenConnections()), name, conn.Kind().String())
	}
}

// Close releases every pool. Safe to call on a partially built resolver.
func (r *Resolver) Close() {
	for _, name := range r.order {
		r.conns[name].Close()
	}
	if r.log != nil && len(r.order) > 0 {
		r.log.Info("closed datasources", nil, map[string]interface{}{
			"count": len(r.order),
		})
	}
}

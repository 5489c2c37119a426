package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/microsoft/go-mssqldb"

	"github.com/Aleph-Alpha/dal/v1/backend"
	"github.com/Aleph-Alpha/dal/v1/logger"
	"github.com/Aleph-Alpha/dal/v1/observability"
	"github.com/Aleph-Alpha/dal/v1/param"
	"github.com/Aleph-Alpha/dal/v1/row"
	"github.com/Aleph-Alpha/dal/v1/tracer"
)

// Pool defaults applied when ConnectionDetails fields are zero.
const (
	defaultMaxOpenConns    = 50
	defaultMaxIdleConns    = 25
	defaultConnMaxLifetime = 1 * time.Minute

	connectTimeout = 10 * time.Second
)

// Conn is one resolved datasource: a live connection pool tagged with its
// backend. PostgreSQL datasources hold a pgx pool, SQL Server datasources a
// database/sql pool; exactly one of the two is set.
//
// Conn implements the query layer's Executor interface.
type Conn struct {
	name string
	kind backend.Kind

	pool *pgxpool.Pool
	db   *sql.DB

	log *logger.Logger

	// tracing and observer hooks are optional
	tracer   *tracer.Tracer
	observer observability.Observer
}

// newConn dials the datasource declared by cfg and verifies the connection
// with a ping before returning.
func newConn(ctx context.Context, cfg DatasourceConfig, log *logger.Logger) (*Conn, error) {
	kind, err := cfg.Kind()
	if err != nil {
		return nil, fmt.Errorf("%w: datasource %q: %v", ErrInvalidConfig, cfg.Name, err)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	c := &Conn{name: cfg.Name, kind: kind, log: log}
	switch kind {
	case backend.Postgres:
		c.pool, err = connectPostgres(ctx, cfg)
	case backend.SQLServer:
		c.db, err = connectSQLServer(ctx, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("datasource %q: %w: %w", cfg.Name, ErrConnectionFailed, err)
	}

	log.Info("connected datasource", nil, map[string]interface{}{
		"datasource": cfg.Name,
		"backend":    kind.String(),
	})
	return c, nil
}

// connectPostgres opens and pings a pgx connection pool.
func connectPostgres(ctx context.Context, cfg DatasourceConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(cfg.Connection.User),
		url.QueryEscape(cfg.Connection.Password),
		cfg.Connection.Host,
		cfg.Connection.Port,
		cfg.Connection.DbName,
		cfg.Connection.SSLMode)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres dsn: %w", err)
	}

	maxOpen := cfg.ConnectionDetails.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = defaultMaxOpenConns
	}
	maxLifetime := cfg.ConnectionDetails.ConnMaxLifetime
	if maxLifetime == 0 {
		maxLifetime = defaultConnMaxLifetime
	}
	poolCfg.MaxConns = int32(maxOpen)
	poolCfg.MaxConnLifetime = maxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("opening postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return pool, nil
}

// connectSQLServer opens and pings a database/sql pool on the go-mssqldb
// driver.
func connectSQLServer(ctx context.Context, cfg DatasourceConfig) (*sql.DB, error) {
	q := url.Values{}
	q.Set("database", cfg.Connection.DbName)
	if cfg.Connection.SSLMode == "disable" {
		q.Set("encrypt", "disable")
	}
	dsn := (&url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(cfg.Connection.User, cfg.Connection.Password),
		Host:     cfg.Connection.Host + ":" + cfg.Connection.Port,
		RawQuery: q.Encode(),
	}).String()

	db, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlserver pool: %w", err)
	}

	maxOpen := cfg.ConnectionDetails.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = defaultMaxOpenConns
	}
	maxIdle := cfg.ConnectionDetails.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = defaultMaxIdleConns
	}
	maxLifetime := cfg.ConnectionDetails.ConnMaxLifetime
	if maxLifetime == 0 {
		maxLifetime = defaultConnMaxLifetime
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlserver: %w", err)
	}
	return db, nil
}

// Name returns the datasource's configured name.
func (c *Conn) Name() string {
	return c.name
}

// Kind returns the datasource's backend.
func (c *Conn) Kind() backend.Kind {
	return c.kind
}

// WithObserver attaches an observer for operation tracking. Returns the
// Conn for chaining.
func (c *Conn) WithObserver(observer observability.Observer) *Conn {
	c.observer = observer
	return c
}

// WithTracer attaches a tracer; every statement then runs inside its own
// span. Returns the Conn for chaining.
func (c *Conn) WithTracer(t *tracer.Tracer) *Conn {
	c.tracer = t
	return c
}

// Query runs a statement that yields rows and materializes the full result
// set as backend-tagged rows.
func (c *Conn) Query(ctx context.Context, sqlText string, params []param.Param) ([]row.Row, error) {
	start := time.Now()
	ctx, end := c.startSpan(ctx, "datasource.query")

	var (
		rows []row.Row
		err  error
	)
	switch c.kind {
	case backend.Postgres:
		var pgRows pgx.Rows
		pgRows, err = c.pool.Query(ctx, sqlText, param.PostgresArgs(params)...)
		if err == nil {
			rows, err = row.CollectPostgres(pgRows)
		}
	case backend.SQLServer:
		var sqlRows *sql.Rows
		sqlRows, err = c.db.QueryContext(ctx, sqlText, param.SQLServerArgs(params)...)
		if err == nil {
			rows, err = row.CollectSQLServer(sqlRows)
		}
	default:
		err = fmt.Errorf("%w: %s", row.ErrUnsupportedBackend, c.kind)
	}
	if err != nil {
		err = fmt.Errorf("datasource %q: %w: %w", c.name, ErrExecutionFailed, TranslateError(err))
	}
	end(err)

	duration := time.Since(start)
	c.observeOperation("query", duration, err, int64(len(rows)), nil)
	if err != nil {
		c.log.ErrorWithContext(ctx, "query failed", err, map[string]interface{}{
			"datasource": c.name,
			"statement":  sqlText,
		})
		return nil, err
	}
	c.log.DebugWithContext(ctx, "query executed", nil, map[string]interface{}{
		"datasource":  c.name,
		"statement":   sqlText,
		"rows":        len(rows),
		"duration_ms": duration.Milliseconds(),
	})
	return rows, nil
}

// Exec runs a statement without a result set and reports affected rows.
func (c *Conn) Exec(ctx context.Context, sqlText string, params []param.Param) (int64, error) {
	start := time.Now()
	ctx, end := c.startSpan(ctx, "datasource.exec")

	var (
		affected int64
		err      error
	)
	switch c.kind {
	case backend.Postgres:
		var tag pgconn.CommandTag
		tag, err = c.pool.Exec(ctx, sqlText, param.PostgresArgs(params)...)
		if err == nil {
			affected = tag.RowsAffected()
		}
	case backend.SQLServer:
		var res sql.Result
		res, err = c.db.ExecContext(ctx, sqlText, param.SQLServerArgs(params)...)
		if err == nil {
			affected, err = res.RowsAffected()
		}
	default:
		err = fmt.Errorf("%w: %s", row.ErrUnsupportedBackend, c.kind)
	}
	if err != nil {
		err = fmt.Errorf("datasource %q: %w: %w", c.name, ErrExecutionFailed, TranslateError(err))
	}
	end(err)

	duration := time.Since(start)
	c.observeOperation("exec", duration, err, affected, nil)
	if err != nil {
		c.log.ErrorWithContext(ctx, "exec failed", err, map[string]interface{}{
			"datasource": c.name,
			"statement":  sqlText,
		})
		return 0, err
	}
	c.log.DebugWithContext(ctx, "exec executed", nil, map[string]interface{}{
		"datasource":  c.name,
		"statement":   sqlText,
		"affected":    affected,
		"duration_ms": duration.Milliseconds(),
	})
	return affected, nil
}

// Ping verifies the datasource is reachable.
func (c *Conn) Ping(ctx context.Context) error {
	var err error
	switch c.kind {
	case backend.Postgres:
		err = c.pool.Ping(ctx)
	case backend.SQLServer:
		err = c.db.PingContext(ctx)
	}
	if err != nil {
		return fmt.Errorf("datasource %q: %w: %w", c.name, ErrConnectionFailed, TranslateError(err))
	}
	return nil
}

// OpenConnections reports the number of currently open connections in the
// underlying pool.
func (c *Conn) OpenConnections() int {
	switch c.kind {
	case backend.Postgres:
		if c.pool != nil {
			return int(c.pool.Stat().TotalConns())
		}
	case backend.SQLServer:
		if c.db != nil {
			return c.db.Stats().OpenConnections
		}
	}
	return 0
}

// Close releases the underlying pool.
func (c *Conn) Close() {
	switch c.kind {
	case backend.Postgres:
		if c.pool != nil {
			c.pool.Close()
		}
	case backend.SQLServer:
		if c.db != nil {
			_ = c.db.Close()
		}
	}
}

// startSpan opens a statement span when a tracer is attached. The returned
// func ends the span, recording err on it first when non-nil.
func (c *Conn) startSpan(ctx context.Context, name string) (context.Context, func(error)) {
	if c.tracer == nil {
		return ctx, func(error) {}
	}
	ctx, span := c.tracer.StartSpan(ctx, name)
	c.tracer.SetAttributes(span, map[string]interface{}{
		"db.datasource": c.name,
		"db.backend":    c.kind.String(),
	})
	return ctx, func(err error) {
		if err != nil {
			c.tracer.RecordErrorOnSpan(span, err)
		}
		span.End()
	}
}

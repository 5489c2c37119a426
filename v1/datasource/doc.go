// Package datasource manages named database connections for the data
// access layer.
//
// A Config declares one or more datasources, each bound to a backend
// (PostgreSQL or SQL Server) with its connection and pool settings. The
// Resolver connects them all at startup and hands out *Conn handles by
// name; the first declared datasource is the default. Failing to resolve a
// name is an error at startup rather than at query time, so a running
// application never discovers a missing datasource mid-request.
//
// Conn is the bridge between the query layer and the native drivers:
// PostgreSQL statements run on a pgx connection pool, SQL Server statements
// run on a database/sql pool backed by the go-mssqldb driver. Both paths
// materialize results into backend-tagged rows and translate driver errors
// into the package's standardized error types.
//
// # Direct Usage (Without FX)
//
//	cfg, err := datasource.LoadConfig("datasources.yaml")
//	if err != nil {
//		log.Fatal("cannot load datasource config", err, nil)
//	}
//	resolver, err := datasource.NewResolver(cfg, log)
//	if err != nil {
//		log.Fatal("cannot connect datasources", err, nil)
//	}
//	defer resolver.Close()
//
//	conn, err := resolver.Resolve("primary")
//
// # FX Module Integration
//
// FXModule provides the Resolver, health-checks every datasource on
// application start and closes all pools on stop. A datasource.Config must
// be available in the container; a tracer and observer are picked up when
// present.
package datasource

// Package crud implements generic create, read, update and delete
// operations for mapped entity types.
//
// An entity participates through a Descriptor: the schema metadata a
// generator would emit (table, columns, primary key), a row mapper, and
// accessor functions for the entity's values. Operations renders each
// statement in the dialect of the bound datasource and decodes results
// through the shared row abstraction, so the same descriptor drives both
// PostgreSQL and SQL Server.
//
// Inserts never send the primary key: the column is omitted from the
// statement, the server generates the key, and the generated value is
// written back onto the entity before Insert returns.
//
//	ops, err := crud.New(leaguesDescriptor, conn, log)
//	if err != nil { ... }
//
//	league := Leagues{ExtID: 100, Slug: "lec", ...}
//	if err := ops.Insert(ctx, &league); err != nil { ... }
//	// league.ID now holds the generated key.
package crud

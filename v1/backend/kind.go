package backend

import (
	"fmt"
	"strconv"
)

// Kind identifies one supported database backend.
//
// The zero value is intentionally invalid so that an uninitialized Kind is
// caught by validation instead of silently behaving like a real backend.
type Kind int

const (
	// Unknown is the invalid zero value.
	Unknown Kind = iota

	// Postgres is the PostgreSQL wire protocol, served by jackc/pgx.
	Postgres

	// SQLServer is the SQL Server TDS protocol, served by microsoft/go-mssqldb.
	SQLServer
)

// String returns the canonical configuration name of the backend.
func (k Kind) String() string {
	switch k {
	case Postgres:
		return "postgres"
	case SQLServer:
		return "sqlserver"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Valid reports whether k is one of the supported backends.
func (k Kind) Valid() bool {
	return k == Postgres || k == SQLServer
}

// Placeholder renders the backend's positional parameter marker for the
// 1-based parameter index n.
//
// Postgres renders "$n", SQL Server renders "@pn". The caller owns the
// numbering; this function only renders it, so parameter ordering is decided
// in exactly one place (the query builder).
func (k Kind) Placeholder(n int) string {
	switch k {
	case Postgres:
		return "$" + strconv.Itoa(n)
	case SQLServer:
		return "@p" + strconv.Itoa(n)
	default:
		return "?"
	}
}

// ParseKind maps a configuration string to a Kind.
// Accepted values are "postgres" and "sqlserver".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "postgres":
		return Postgres, nil
	case "sqlserver":
		return SQLServer, nil
	default:
		return Unknown, fmt.Errorf("unsupported backend %q (must be 'postgres' or 'sqlserver')", s)
	}
}

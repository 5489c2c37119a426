// Package row is a backend-agnostic handle over one database row.
//
// A Row is produced from either client library's native result
// (pgx.Rows for PostgreSQL, *sql.Rows via go-mssqldb for SQL Server) and is
// bound to exactly one backend for its entire lifetime. Row mappers are
// written once against this package and work unmodified regardless of which
// backend produced the row.
//
// # Design
//
// The abstraction is a closed, backend-tagged union rather than open-ended
// dynamic dispatch: decoding switches exhaustively over backend.Kind, and an
// unknown tag surfaces ErrUnsupportedBackend instead of panicking. Adding a
// backend is a compile-visible change at every decode site, not a silent
// runtime gap.
//
// # Extraction
//
// Go methods cannot be generic, so typed extraction lives in package-level
// functions:
//
//	slug, err := row.Extract[string](r, "slug")        // fail on NULL or mismatch
//	img, err := row.ExtractOptional[string](r, "image") // nil exactly on SQL NULL
//
// ExtractOptional returns nil if and only if the backend reported SQL NULL
// for the column. Every other decode failure is ErrTypeMismatch, and a
// missing column is ErrColumnNotFound. Decoding never mutates the row; it is
// pure and repeatable.
package row

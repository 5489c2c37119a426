// Package backend defines the closed set of database backends supported by dal.
//
// Every other package in this module that behaves differently per backend
// switches exhaustively over backend.Kind. Adding a backend means adding a
// Kind constant and letting the compiler (and the default branches that
// surface row.ErrUnsupportedBackend) point at every site that needs a new
// case. There is no open-ended registration mechanism on purpose: a silent
// runtime gap for an unknown backend is exactly the failure mode this design
// rules out.
//
// The package also owns the one piece of SQL syntax that is inherently
// backend-specific at this layer: the positional parameter placeholder.
// PostgreSQL numbers placeholders as $1, $2, ...; SQL Server (TDS) uses
// @p1, @p2, .... Centralizing the rendering here keeps query text generation
// in v1/query and v1/crud backend-agnostic.
package backend

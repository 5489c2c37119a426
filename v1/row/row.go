package row

import (
	"fmt"

	"github.com/Aleph-Alpha/dal/v1/backend"
)

// ColumnType is the backend-native type tag of one column.
// For Postgres columns the OID field carries the pg_type OID reported by the
// wire protocol; for SQL Server columns Native carries the driver's database
// type name (e.g. "INT", "NVARCHAR").
type ColumnType struct {
	Kind   backend.Kind
	OID    uint32
	Native string
}

// String renders the tag for error messages.
func (t ColumnType) String() string {
	switch t.Kind {
	case backend.Postgres:
		return fmt.Sprintf("postgres(oid=%d)", t.OID)
	case backend.SQLServer:
		return fmt.Sprintf("sqlserver(%s)", t.Native)
	default:
		return "unknown"
	}
}

// Column describes one column of a row: its name exactly as reported by the
// backend (case preserved) and its native type tag.
type Column struct {
	Name string
	Type ColumnType
}

// Row is a backend-tagged handle over the materialized contents of exactly
// one native row. The zero value is not usable; construct rows with New or
// the Collect* helpers.
//
// A Row is immutable after construction. Extraction never mutates it, so a
// row (and any result set holding it) can be decoded any number of times.
type Row struct {
	kind  backend.Kind
	cols  []Column
	vals  []any
	index map[string]int
}

// New builds a Row from an explicit column set and value list. The values
// must use the given backend's native Go representations (what pgx or
// database/sql would have produced); this is the constructor the backend
// adapters and tests share.
func New(kind backend.Kind, cols []Column, vals []any) (Row, error) {
	if !kind.Valid() {
		return Row{}, fmt.Errorf("%w: %s", ErrUnsupportedBackend, kind)
	}
	if len(cols) != len(vals) {
		return Row{}, fmt.Errorf("%w: %d columns, %d values", ErrShapeMismatch, len(cols), len(vals))
	}
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		index[c.Name] = i
	}
	return Row{kind: kind, cols: cols, vals: vals, index: index}, nil
}

// Kind returns the backend this row is bound to.
func (r Row) Kind() backend.Kind {
	return r.kind
}

// Columns returns the row's column descriptors in the order the backend
// reported them. The returned slice is a copy.
func (r Row) Columns() []Column {
	out := make([]Column, len(r.cols))
	copy(out, r.cols)
	return out
}

// Len returns the number of columns.
func (r Row) Len() int {
	return len(r.cols)
}

// lookup returns the raw native value and descriptor for a column name.
func (r Row) lookup(name string) (any, Column, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, Column{}, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return r.vals[i], r.cols[i], nil
}

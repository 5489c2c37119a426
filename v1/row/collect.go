package row

import (
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Aleph-Alpha/dal/v1/backend"
)

// CollectPostgres drains a pgx result set into rows. It consumes rows fully
// and reports the deferred iteration error, so callers must not touch rows
// afterwards.
func CollectPostgres(rows pgx.Rows) ([]Row, error) {
	defer rows.Close()

	descs := rows.FieldDescriptions()
	cols := make([]Column, len(descs))
	for i, d := range descs {
		cols[i] = Column{
			Name: d.Name,
			Type: ColumnType{Kind: backend.Postgres, OID: d.DataTypeOID},
		}
	}

	var out []Row
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("row: read postgres values: %w", err)
		}
		r, err := New(backend.Postgres, cols, vals)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row: iterate postgres rows: %w", err)
	}
	return out, nil
}

// CollectSQLServer drains a database/sql result set into rows. Values are
// scanned as raw any, preserving the driver's native representations
// (int64, float64, bool, string, []byte, time.Time, nil).
func CollectSQLServer(rows *sql.Rows) ([]Row, error) {
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("row: read sqlserver column types: %w", err)
	}
	cols := make([]Column, len(types))
	for i, t := range types {
		cols[i] = Column{
			Name: t.Name(),
			Type: ColumnType{Kind: backend.SQLServer, Native: t.DatabaseTypeName()},
		}
	}

	var out []Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("row: scan sqlserver row: %w", err)
		}
		r, err := New(backend.SQLServer, cols, vals)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row: iterate sqlserver rows: %w", err)
	}
	return out, nil
}

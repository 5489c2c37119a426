package row

import (
	"errors"
	"testing"

	"github.com/Aleph-Alpha/dal/v1/backend"
)

func pgColumns(names ...string) []Column {
	cols := make([]Column, len(names))
	for i, n := range names {
		cols[i] = Column{Name: n, Type: ColumnType{Kind: backend.Postgres, OID: 23}}
	}
	return cols
}

func TestNewShapeMismatch(t *testing.T) {
	_, err := New(backend.Postgres, pgColumns("id", "slug"), []any{int32(1)})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New(backend.Unknown, nil, nil)
	if !errors.Is(err, ErrUnsupportedBackend) {
		t.Fatalf("expected ErrUnsupportedBackend, got %v", err)
	}
}

func TestColumnsPreservesOrderAndCopies(t *testing.T) {
	r, err := New(backend.Postgres, pgColumns("id", "slug"), []any{int32(1), "premier"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cols := r.Columns()
	if len(cols) != 2 || cols[0].Name != "id" || cols[1].Name != "slug" {
		t.Fatalf("unexpected columns: %+v", cols)
	}
	cols[0].Name = "mutated"
	if r.Columns()[0].Name != "id" {
		t.Error("Columns must return a copy")
	}
	if r.Len() != 2 {
		t.Errorf("expected Len 2, got %d", r.Len())
	}
}

func TestLookupMissingColumn(t *testing.T) {
	r, err := New(backend.Postgres, pgColumns("id"), []any{int32(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = Extract[int32](r, "no_such_column")
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound, got %v", err)
	}
	if !IsColumnNotFound(err) {
		t.Error("IsColumnNotFound should match")
	}
}

func TestColumnTypeString(t *testing.T) {
	pg := ColumnType{Kind: backend.Postgres, OID: 25}
	if pg.String() != "postgres(oid=25)" {
		t.Errorf("unexpected string: %s", pg.String())
	}
	ms := ColumnType{Kind: backend.SQLServer, Native: "NVARCHAR"}
	if ms.String() != "sqlserver(NVARCHAR)" {
		t.Errorf("unexpected string: %s", ms.String())
	}
}

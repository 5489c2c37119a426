package row

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Aleph-Alpha/dal/v1/backend"
)

func mustRow(t *testing.T, kind backend.Kind, cols []Column, vals []any) Row {
	t.Helper()
	r, err := New(kind, cols, vals)
	if err != nil {
		t.Fatalf("building row: %v", err)
	}
	return r
}

func leaguesPostgresRow(t *testing.T, imageURL any) Row {
	t.Helper()
	cols := []Column{
		{Name: "id", Type: ColumnType{Kind: backend.Postgres, OID: 23}},
		{Name: "ext_id", Type: ColumnType{Kind: backend.Postgres, OID: 23}},
		{Name: "slug", Type: ColumnType{Kind: backend.Postgres, OID: 25}},
		{Name: "image_url", Type: ColumnType{Kind: backend.Postgres, OID: 25}},
	}
	return mustRow(t, backend.Postgres, cols, []any{int32(7), int32(109), "league-of-legends", imageURL})
}

func TestExtractPostgresScalars(t *testing.T) {
	r := leaguesPostgresRow(t, "https://example.test/lol.png")

	id, err := Extract[int32](r, "id")
	if err != nil || id != 7 {
		t.Fatalf("id: got %d, %v", id, err)
	}
	slug, err := Extract[string](r, "slug")
	if err != nil || slug != "league-of-legends" {
		t.Fatalf("slug: got %q, %v", slug, err)
	}
	// int32 widens to int64, never the reverse.
	wide, err := Extract[int64](r, "ext_id")
	if err != nil || wide != 109 {
		t.Fatalf("ext_id as int64: got %d, %v", wide, err)
	}
	if _, err := Extract[int16](r, "ext_id"); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("int32 into int16 should mismatch, got %v", err)
	}
}

func TestExtractPostgresNullDiscrimination(t *testing.T) {
	r := leaguesPostgresRow(t, nil)

	if _, err := Extract[string](r, "image_url"); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("NULL through Extract should mismatch, got %v", err)
	}
	url, err := ExtractOptional[string](r, "image_url")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != nil {
		t.Fatalf("expected nil for NULL, got %q", *url)
	}

	present := leaguesPostgresRow(t, "https://example.test/lol.png")
	url, err = ExtractOptional[string](present, "image_url")
	if err != nil || url == nil || *url != "https://example.test/lol.png" {
		t.Fatalf("expected value, got %v, %v", url, err)
	}
}

func TestExtractPostgresWidening(t *testing.T) {
	cols := []Column{
		{Name: "small", Type: ColumnType{Kind: backend.Postgres, OID: 21}},
		{Name: "real", Type: ColumnType{Kind: backend.Postgres, OID: 700}},
		{Name: "flag", Type: ColumnType{Kind: backend.Postgres, OID: 16}},
		{Name: "at", Type: ColumnType{Kind: backend.Postgres, OID: 1114}},
	}
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r := mustRow(t, backend.Postgres, cols, []any{int16(3), float32(1.5), true, at})

	if v, err := Extract[int32](r, "small"); err != nil || v != 3 {
		t.Errorf("int16 into int32: got %d, %v", v, err)
	}
	if v, err := Extract[int64](r, "small"); err != nil || v != 3 {
		t.Errorf("int16 into int64: got %d, %v", v, err)
	}
	if v, err := Extract[float64](r, "real"); err != nil || v != 1.5 {
		t.Errorf("float32 into float64: got %v, %v", v, err)
	}
	if v, err := Extract[bool](r, "flag"); err != nil || !v {
		t.Errorf("bool: got %v, %v", v, err)
	}
	if v, err := Extract[time.Time](r, "at"); err != nil || !v.Equal(at) {
		t.Errorf("time: got %v, %v", v, err)
	}
	if _, err := Extract[float32](r, "flag"); !IsTypeMismatch(err) {
		t.Errorf("bool into float32 should mismatch, got %v", err)
	}
}

func TestExtractSQLServerNarrowing(t *testing.T) {
	cols := []Column{
		{Name: "id", Type: ColumnType{Kind: backend.SQLServer, Native: "INT"}},
		{Name: "big", Type: ColumnType{Kind: backend.SQLServer, Native: "BIGINT"}},
		{Name: "ratio", Type: ColumnType{Kind: backend.SQLServer, Native: "FLOAT"}},
		{Name: "name", Type: ColumnType{Kind: backend.SQLServer, Native: "NVARCHAR"}},
		{Name: "blobbed", Type: ColumnType{Kind: backend.SQLServer, Native: "VARCHAR"}},
	}
	r := mustRow(t, backend.SQLServer, cols,
		[]any{int64(42), int64(1) << 40, float64(2.25), "LEC", []byte("EMEA")})

	if v, err := Extract[int32](r, "id"); err != nil || v != 42 {
		t.Fatalf("int64 into int32: got %d, %v", v, err)
	}
	if v, err := Extract[int16](r, "id"); err != nil || v != 42 {
		t.Fatalf("int64 into int16: got %d, %v", v, err)
	}
	// Out of range narrowing is a mismatch, not a silent truncation.
	if _, err := Extract[int32](r, "big"); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("overflowing narrow should mismatch, got %v", err)
	}
	if v, err := Extract[float32](r, "ratio"); err != nil || v != 2.25 {
		t.Fatalf("float64 into float32: got %v, %v", v, err)
	}
	if v, err := Extract[string](r, "name"); err != nil || v != "LEC" {
		t.Fatalf("string: got %q, %v", v, err)
	}
	if v, err := Extract[string](r, "blobbed"); err != nil || v != "EMEA" {
		t.Fatalf("[]byte into string: got %q, %v", v, err)
	}
}

func TestExtractSQLServerFloatNarrowing(t *testing.T) {
	cols := []Column{
		{Name: "huge", Type: ColumnType{Kind: backend.SQLServer, Native: "FLOAT"}},
		{Name: "tiny", Type: ColumnType{Kind: backend.SQLServer, Native: "FLOAT"}},
		{Name: "edge", Type: ColumnType{Kind: backend.SQLServer, Native: "FLOAT"}},
	}
	r := mustRow(t, backend.SQLServer, cols,
		[]any{math.MaxFloat64, -math.MaxFloat64, float64(math.MaxFloat32)})

	// Values beyond float32 range must mismatch, not round to infinity.
	if _, err := Extract[float32](r, "huge"); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("overflowing float narrow should mismatch, got %v", err)
	}
	if _, err := Extract[float32](r, "tiny"); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("underflowing float narrow should mismatch, got %v", err)
	}
	if v, err := Extract[float32](r, "edge"); err != nil || v != math.MaxFloat32 {
		t.Fatalf("in-range narrow: got %v, %v", v, err)
	}
	if v, err := Extract[float64](r, "huge"); err != nil || v != math.MaxFloat64 {
		t.Fatalf("float64 passthrough: got %v, %v", v, err)
	}
}

func TestExtractSQLServerNullDiscrimination(t *testing.T) {
	cols := []Column{
		{Name: "image_url", Type: ColumnType{Kind: backend.SQLServer, Native: "NVARCHAR"}},
	}
	r := mustRow(t, backend.SQLServer, cols, []any{nil})

	if _, err := Extract[string](r, "image_url"); !IsTypeMismatch(err) {
		t.Fatalf("NULL through Extract should mismatch, got %v", err)
	}
	v, err := ExtractOptional[string](r, "image_url")
	if err != nil || v != nil {
		t.Fatalf("expected nil, nil for NULL, got %v, %v", v, err)
	}
}

func TestExtractOptionalMissingColumnIsError(t *testing.T) {
	r := leaguesPostgresRow(t, nil)
	if _, err := ExtractOptional[string](r, "region"); !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("missing column must error even for optional, got %v", err)
	}
}

package datasource

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	mssql "github.com/microsoft/go-mssqldb"
)

func TestTranslateErrorNil(t *testing.T) {
	if got := TranslateError(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestTranslateErrorPostgresCodes(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{"23505", ErrUniqueViolation},
		{"23503", ErrForeignKeyViolation},
		{"23502", ErrNotNullViolation},
		{"23514", ErrCheckViolation},
		{"08006", ErrConnectionFailed},
		{"57014", ErrCanceled},
	}
	for _, tc := range cases {
		err := TranslateError(&pgconn.PgError{Code: tc.code, Message: "boom"})
		if !errors.Is(err, tc.want) {
			t.Errorf("code %s: expected %v, got %v", tc.code, tc.want, err)
		}
	}
}

func TestTranslateErrorSQLServerNumbers(t *testing.T) {
	cases := []struct {
		number  int32
		message string
		want    error
	}{
		{2627, "Violation of UNIQUE KEY constraint", ErrUniqueViolation},
		{2601, "Cannot insert duplicate key row", ErrUniqueViolation},
		{547, "conflicted with the FOREIGN KEY constraint", ErrForeignKeyViolation},
		{547, "conflicted with the CHECK constraint", ErrCheckViolation},
		{515, "Cannot insert the value NULL", ErrNotNullViolation},
	}
	for _, tc := range cases {
		err := TranslateError(mssql.Error{Number: tc.number, Message: tc.message})
		if !errors.Is(err, tc.want) {
			t.Errorf("number %d: expected %v, got %v", tc.number, tc.want, err)
		}
	}
}

func TestTranslateErrorContext(t *testing.T) {
	if err := TranslateError(context.DeadlineExceeded); !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
	if err := TranslateError(context.Canceled); !errors.Is(err, ErrCanceled) {
		t.Errorf("expected ErrCanceled, got %v", err)
	}
}

func TestTranslateErrorKeepsOriginal(t *testing.T) {
	orig := &pgconn.PgError{Code: "23505", ConstraintName: "leagues_ext_id_key"}
	err := TranslateError(fmt.Errorf("insert: %w", orig))

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.ConstraintName != "leagues_ext_id_key" {
		t.Error("translated error must keep the driver error in the chain")
	}
}

func TestTranslateErrorUnknownPassesThrough(t *testing.T) {
	orig := errors.New("some application error")
	if got := TranslateError(orig); got != orig {
		t.Errorf("unknown errors must pass through unchanged, got %v", got)
	}
}

func TestErrorHelpers(t *testing.T) {
	unique := TranslateError(&pgconn.PgError{Code: "23505"})
	if !IsUniqueViolation(unique) || !IsConstraintViolation(unique) {
		t.Error("unique violation helpers must match")
	}
	if IsRetryableError(unique) {
		t.Error("constraint violations are never retryable")
	}
	if !IsRetryableError(TranslateError(context.DeadlineExceeded)) {
		t.Error("timeouts are retryable")
	}
}

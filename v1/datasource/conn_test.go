package datasource

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	mssql "github.com/microsoft/go-mssqldb"

	"github.com/Aleph-Alpha/dal/v1/backend"
	"github.com/Aleph-Alpha/dal/v1/logger"
	"github.com/Aleph-Alpha/dal/v1/observability"
	"github.com/Aleph-Alpha/dal/v1/param"
	"github.com/Aleph-Alpha/dal/v1/row"
)

// recordingObserver collects operation reports for assertions.
type recordingObserver struct {
	operations []observability.OperationContext
}

func (r *recordingObserver) ObserveOperation(ctx observability.OperationContext) {
	r.operations = append(r.operations, ctx)
}

func newMockConn(t *testing.T) (*Conn, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("creating sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	log := logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "dal-test"})
	return &Conn{name: "reporting", kind: backend.SQLServer, db: db, log: log}, mock
}

func TestConnQuerySQLServer(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM leagues WHERE region = @p1")).
		WithArgs("EMEA").
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug"}).
			AddRow(int64(1), "lec").
			AddRow(int64(2), "prime-league"))

	rows, err := conn.Query(context.Background(),
		"SELECT * FROM leagues WHERE region = @p1",
		[]param.Param{param.Value("EMEA")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Kind() != backend.SQLServer {
		t.Errorf("rows must carry the backend tag, got %v", rows[0].Kind())
	}
	slug, err := row.Extract[string](rows[1], "slug")
	if err != nil || slug != "prime-league" {
		t.Errorf("expected prime-league, got %q, %v", slug, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestConnQueryParamWidening(t *testing.T) {
	conn, mock := newMockConn(t)

	// int32 parameters travel as int64 through database/sql.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM leagues WHERE id = @p1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	_, err := conn.Query(context.Background(),
		"SELECT * FROM leagues WHERE id = @p1",
		[]param.Param{param.Value(int32(7))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestConnQueryNullParam(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM leagues WHERE image_url = @p1")).
		WithArgs(nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rows, err := conn.Query(context.Background(),
		"SELECT * FROM leagues WHERE image_url = @p1",
		[]param.Param{param.Null[string]()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected empty result, got %d rows", len(rows))
	}
}

func TestConnExecSQLServer(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM leagues WHERE id = @p1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := conn.Exec(context.Background(),
		"DELETE FROM leagues WHERE id = @p1",
		[]param.Param{param.Value(int32(3))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected 1 affected row, got %d", affected)
	}
}

func TestConnExecTranslatesDriverError(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO leagues")).
		WillReturnError(mssql.Error{Number: 2627, Message: "Violation of UNIQUE KEY constraint"})

	_, err := conn.Exec(context.Background(),
		"INSERT INTO leagues (ext_id) VALUES (@p1)",
		[]param.Param{param.Value(int32(1))})
	if !errors.Is(err, ErrExecutionFailed) {
		t.Fatalf("expected ErrExecutionFailed, got %v", err)
	}
	if !IsUniqueViolation(err) {
		t.Errorf("expected unique violation in chain, got %v", err)
	}
}

func TestConnObserverReceivesOperations(t *testing.T) {
	conn, mock := newMockConn(t)
	obs := &recordingObserver{}
	conn.WithObserver(obs)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM leagues")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	if _, err := conn.Query(context.Background(), "SELECT * FROM leagues", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(obs.operations) != 1 {
		t.Fatalf("expected 1 observed operation, got %d", len(obs.operations))
	}
	op := obs.operations[0]
	if op.Component != "datasource" || op.Operation != "query" || op.Resource != "reporting" {
		t.Errorf("unexpected operation context: %+v", op)
	}
	if op.Size != 1 {
		t.Errorf("expected size 1, got %d", op.Size)
	}
}

package datasource

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	mssql "github.com/microsoft/go-mssqldb"
)

// Standardized datasource error types. These abstract away driver-specific
// error details so application code can handle failures the same way for
// every backend.
var (
	// ErrConnectionFailed is returned when a datasource cannot be reached
	ErrConnectionFailed = errors.New("connection failed")

	// ErrExecutionFailed is returned when a statement fails to execute
	ErrExecutionFailed = errors.New("execution failed")

	// ErrUnknownDatasource is returned when resolving a name no datasource was declared under
	ErrUnknownDatasource = errors.New("unknown datasource")

	// ErrNoDatasources is returned when a configuration declares no datasources
	ErrNoDatasources = errors.New("no datasources configured")

	// ErrDuplicateDatasource is returned when two datasources share a name
	ErrDuplicateDatasource = errors.New("duplicate datasource name")

	// ErrInvalidConfig is returned for structurally invalid configuration
	ErrInvalidConfig = errors.New("invalid datasource config")

	// ErrUniqueViolation is returned when a statement breaks a unique constraint
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrForeignKeyViolation is returned when a statement breaks a foreign key constraint
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")

	// ErrNotNullViolation is returned when a statement writes NULL into a NOT NULL column
	ErrNotNullViolation = errors.New("not null constraint violation")

	// ErrCheckViolation is returned when a statement breaks a check constraint
	ErrCheckViolation = errors.New("check constraint violation")

	// ErrTimeout is returned when a statement exceeds its deadline
	ErrTimeout = errors.New("timeout")

	// ErrCanceled is returned when a statement is canceled
	ErrCanceled = errors.New("operation canceled")
)

// TranslateError converts driver-specific errors into the standardized
// error types above while keeping the original error in the chain. Errors
// that match no known category are returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if sentinel := classify(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	if errors.Is(err, context.Canceled) {
		return ErrCanceled
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPostgres(pgErr)
	}

	var msErr mssql.Error
	if errors.As(err, &msErr) {
		return classifySQLServer(msErr)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrTimeout
		}
		return ErrConnectionFailed
	}
	return nil
}

// classifyPostgres maps SQLSTATE codes to standardized errors.
func classifyPostgres(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case "23505":
		return ErrUniqueViolation
	case "23503":
		return ErrForeignKeyViolation
	case "23502":
		return ErrNotNullViolation
	case "23514":
		return ErrCheckViolation
	case "57014":
		return ErrCanceled
	}
	// Class 08 covers connection exceptions.
	if strings.HasPrefix(pgErr.Code, "08") {
		return ErrConnectionFailed
	}
	return nil
}

// classifySQLServer maps engine error numbers to standardized errors.
func classifySQLServer(msErr mssql.Error) error {
	switch msErr.Number {
	case 2627, 2601:
		return ErrUniqueViolation
	case 547:
		// The engine reports both FK and check violations as 547; tell
		// them apart by message.
		if strings.Contains(strings.ToUpper(msErr.Message), "CHECK") {
			return ErrCheckViolation
		}
		return ErrForeignKeyViolation
	case 515:
		return ErrNotNullViolation
	case -2:
		return ErrTimeout
	}
	return nil
}

// IsConstraintViolation reports whether err is any constraint violation.
func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrUniqueViolation) ||
		errors.Is(err, ErrForeignKeyViolation) ||
		errors.Is(err, ErrNotNullViolation) ||
		errors.Is(err, ErrCheckViolation)
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrUniqueViolation)
}

// IsRetryableError reports whether the failed operation may succeed when
// repeated: timeouts and connection failures qualify, constraint
// violations never do.
func IsRetryableError(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrConnectionFailed)
}

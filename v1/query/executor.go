package query

import (
	"context"

	"github.com/Aleph-Alpha/dal/v1/backend"
	"github.com/Aleph-Alpha/dal/v1/param"
	"github.com/Aleph-Alpha/dal/v1/row"
)

//go:generate mockgen -source=executor.go -destination=mock_executor.go -package=query

// Executor runs rendered SQL against one backend connection. The datasource
// package provides the real implementations; tests substitute fakes.
type Executor interface {
	// Kind identifies the backend dialect, which decides the placeholder
	// style statements are rendered with.
	Kind() backend.Kind

	// Query runs a statement that yields rows.
	Query(ctx context.Context, sql string, params []param.Param) ([]row.Row, error)

	// Exec runs a statement without a result set and reports the number of
	// affected rows.
	Exec(ctx context.Context, sql string, params []param.Param) (int64, error)
}

package query

import "errors"

var (
	// ErrBuilderConsumed is returned when a terminal method is called on a
	// builder that already ran its statement.
	ErrBuilderConsumed = errors.New("query: builder already consumed")

	// ErrNoExecutor is returned when a builder was constructed without a
	// datasource connection.
	ErrNoExecutor = errors.New("query: no executor bound")

	// ErrInvalidComparator is returned when a filter clause was added with
	// an undefined comparison operator.
	ErrInvalidComparator = errors.New("query: invalid comparator")
)

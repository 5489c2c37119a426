package query

import (
	"github.com/Aleph-Alpha/dal/v1/entity"
	"github.com/Aleph-Alpha/dal/v1/row"
)

// Result holds a fully materialized result set. Decoding reads, never
// drains: the same Result can be decoded repeatedly and the raw rows stay
// available alongside the typed view.
type Result[T any] struct {
	rows   []row.Row
	mapper entity.RowMapper[T]
}

// NewResult wraps collected rows with their mapper.
func NewResult[T any](rows []row.Row, mapper entity.RowMapper[T]) *Result[T] {
	return &Result[T]{rows: rows, mapper: mapper}
}

// Len returns the number of rows.
func (r *Result[T]) Len() int {
	return len(r.rows)
}

// Raw returns the underlying rows in result order. The slice is a copy.
func (r *Result[T]) Raw() []row.Row {
	out := make([]row.Row, len(r.rows))
	copy(out, r.rows)
	return out
}

// Decode maps every row to T in result order. The first row that fails to
// decode aborts the pass with its error.
func (r *Result[T]) Decode() ([]T, error) {
	out := make([]T, 0, len(r.rows))
	for _, rw := range r.rows {
		v, err := r.mapper.Decode(rw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// First decodes the first row. ok is false on an empty result.
func (r *Result[T]) First() (T, bool, error) {
	var zero T
	if len(r.rows) == 0 {
		return zero, false, nil
	}
	v, err := r.mapper.Decode(r.rows[0])
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

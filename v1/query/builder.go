package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/Aleph-Alpha/dal/v1/entity"
	"github.com/Aleph-Alpha/dal/v1/param"
	"github.com/Aleph-Alpha/dal/v1/row"
)

type clause struct {
	conj   string
	column string
	comp   Comp
	value  param.Param
}

type order struct {
	column string
	desc   bool
}

// Builder accumulates a SELECT statement over one table. Construct it with
// NewSelect, chain filter clauses, then run it once with Query.
type Builder[T any] struct {
	exec     Executor
	mapper   entity.RowMapper[T]
	table    string
	clauses  []clause
	orders   []order
	consumed bool
	err      error
}

// NewSelect starts a builder reading all columns of table, decoding result
// rows through mapper.
func NewSelect[T any](exec Executor, mapper entity.RowMapper[T], table string) *Builder[T] {
	return &Builder[T]{exec: exec, mapper: mapper, table: table}
}

// Where adds a filter clause. Additional calls conjoin with AND, same as And.
func (b *Builder[T]) Where(fv entity.FieldValue, c Comp) *Builder[T] {
	return b.add("AND", fv, c)
}

// And adds a filter clause conjoined with AND.
func (b *Builder[T]) And(fv entity.FieldValue, c Comp) *Builder[T] {
	return b.add("AND", fv, c)
}

// Or adds a filter clause conjoined with OR.
func (b *Builder[T]) Or(fv entity.FieldValue, c Comp) *Builder[T] {
	return b.add("OR", fv, c)
}

func (b *Builder[T]) add(conj string, fv entity.FieldValue, c Comp) *Builder[T] {
	if !c.Valid() && b.err == nil {
		b.err = fmt.Errorf("%w: %d on column %q", ErrInvalidComparator, int(c), fv.Column())
	}
	if len(b.clauses) == 0 {
		conj = ""
	}
	b.clauses = append(b.clauses, clause{conj: conj, column: fv.Column(), comp: c, value: fv.Value()})
	return b
}

// OrderBy appends an ordering term.
func (b *Builder[T]) OrderBy(f entity.Field, desc bool) *Builder[T] {
	b.orders = append(b.orders, order{column: f.Column(), desc: desc})
	return b
}

// SQL renders the statement and its parameter list using the bound
// executor's placeholder dialect. Rendering does not consume the builder.
func (b *Builder[T]) SQL() (string, []param.Param) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT * FROM %s", b.table)

	params := make([]param.Param, 0, len(b.clauses))
	for i, cl := range b.clauses {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" " + cl.conj + " ")
		}
		params = append(params, cl.value)
		fmt.Fprintf(&sb, "%s %s %s", cl.column, cl.comp.SQL(), b.exec.Kind().Placeholder(len(params)))
	}
	for i, o := range b.orders {
		if i == 0 {
			sb.WriteString(" ORDER BY ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(o.column)
		if o.desc {
			sb.WriteString(" DESC")
		}
	}
	return sb.String(), params
}

// Query runs the statement and returns its result set. The builder is
// consumed: calling Query again returns ErrBuilderConsumed.
func (b *Builder[T]) Query(ctx context.Context) (*Result[T], error) {
	if b.exec == nil {
		return nil, ErrNoExecutor
	}
	if !b.exec.Kind().Valid() {
		return nil, fmt.Errorf("%w: %s", row.ErrUnsupportedBackend, b.exec.Kind())
	}
	if b.err != nil {
		return nil, b.err
	}
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	sql, params := b.SQL()
	rows, err := b.exec.Query(ctx, sql, params)
	if err != nil {
		return nil, err
	}
	return NewResult(rows, b.mapper), nil
}

package crud

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Aleph-Alpha/dal/v1/backend"
	"github.com/Aleph-Alpha/dal/v1/entity"
	"github.com/Aleph-Alpha/dal/v1/logger"
	"github.com/Aleph-Alpha/dal/v1/observability"
	"github.com/Aleph-Alpha/dal/v1/param"
	"github.com/Aleph-Alpha/dal/v1/query"
)

// Operations binds a descriptor to one datasource connection and provides
// the CRUD surface for the entity type.
type Operations[T any] struct {
	desc     Descriptor[T]
	conn     query.Executor
	log      *logger.Logger
	observer observability.Observer
}

// New validates the descriptor and binds it to a connection.
func New[T any](desc Descriptor[T], conn query.Executor, log *logger.Logger) (*Operations[T], error) {
	if err := desc.validate(); err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, query.ErrNoExecutor
	}
	if log == nil {
		return nil, ErrNoLogger
	}
	return &Operations[T]{desc: desc, conn: conn, log: log}, nil
}

// WithObserver attaches an observer for operation tracking. Returns the
// Operations for chaining.
func (o *Operations[T]) WithObserver(observer observability.Observer) *Operations[T] {
	o.observer = observer
	return o
}

// Table returns the mapped table name.
func (o *Operations[T]) Table() string {
	return o.desc.Model.Table
}

// FindAll loads every row of the table.
func (o *Operations[T]) FindAll(ctx context.Context) ([]T, error) {
	start := time.Now()
	res, err := o.FindAllQuery().Query(ctx)
	if err != nil {
		o.observe("find_all", start, err, 0)
		return nil, err
	}
	out, err := res.Decode()
	o.observe("find_all", start, err, int64(res.Len()))
	return out, err
}

// FindAllQuery starts a filtered select over the table. The returned
// builder is single-use.
func (o *Operations[T]) FindAllQuery() *query.Builder[T] {
	return query.NewSelect(o.conn, o.desc.Mapper, o.desc.Model.Table)
}

// FindByPK loads the row with the given primary key. found is false when
// no row matches.
func (o *Operations[T]) FindByPK(ctx context.Context, pk param.Param) (T, bool, error) {
	var zero T
	if !o.desc.Model.HasPrimaryKey() {
		return zero, false, fmt.Errorf("%w: table %q", ErrNoPrimaryKey, o.desc.Model.Table)
	}
	start := time.Now()

	res, err := o.FindAllQuery().
		Where(entity.NewFieldValue(entity.NewField(o.desc.Model.PrimaryKey), pk), query.Eq).
		Query(ctx)
	if err != nil {
		o.observe("find_by_pk", start, err, 0)
		return zero, false, err
	}
	v, found, err := res.First()
	o.observe("find_by_pk", start, err, int64(res.Len()))
	return v, found, err
}

// Insert writes the entity as a new row. The primary key column is omitted
// from the statement; the server generates the key and Insert writes it
// back onto the entity before returning. Entities without a primary key are
// inserted as-is.
func (o *Operations[T]) Insert(ctx context.Context, e *T) error {
	start := time.Now()
	cols, vals, err := o.nonKeyValues(e)
	if err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT INTO %s (%s)", o.desc.Model.Table, strings.Join(cols, ", "))

	placeholders := make([]string, len(vals))
	for i := range vals {
		placeholders[i] = o.conn.Kind().Placeholder(i + 1)
	}

	if !o.desc.Model.HasPrimaryKey() {
		fmt.Fprintf(&sb, " VALUES (%s)", strings.Join(placeholders, ", "))
		_, err = o.conn.Exec(ctx, sb.String(), vals)
		o.observe("insert", start, err, 1)
		return err
	}

	// The key write-back clause differs per dialect: RETURNING follows the
	// VALUES list, OUTPUT precedes it.
	if o.conn.Kind() == backend.SQLServer {
		fmt.Fprintf(&sb, " OUTPUT INSERTED.%s VALUES (%s)", o.desc.Model.PrimaryKey, strings.Join(placeholders, ", "))
	} else {
		fmt.Fprintf(&sb, " VALUES (%s) RETURNING %s", strings.Join(placeholders, ", "), o.desc.Model.PrimaryKey)
	}

	rows, err := o.conn.Query(ctx, sb.String(), vals)
	if err != nil {
		o.observe("insert", start, err, 0)
		return err
	}
	if len(rows) != 1 {
		err = fmt.Errorf("insert into %s returned %d key rows, want 1", o.desc.Model.Table, len(rows))
		o.observe("insert", start, err, int64(len(rows)))
		return err
	}
	err = o.desc.SetPK(e, rows[0])
	o.observe("insert", start, err, 1)
	return err
}

// Update rewrites every non-key column of the row identified by the
// entity's primary key. Returns ErrRowNotFound when no row matches.
func (o *Operations[T]) Update(ctx context.Context, e *T) error {
	start := time.Now()
	if !o.desc.Model.HasPrimaryKey() {
		return fmt.Errorf("%w: table %q", ErrNoPrimaryKey, o.desc.Model.Table)
	}
	cols, vals, err := o.nonKeyValues(e)
	if err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "UPDATE %s SET ", o.desc.Model.Table)
	for i, c := range cols {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s = %s", c, o.conn.Kind().Placeholder(i+1))
	}
	fmt.Fprintf(&sb, " WHERE %s = %s", o.desc.Model.PrimaryKey, o.conn.Kind().Placeholder(len(cols)+1))
	vals = append(vals, o.desc.PK(e))

	affected, err := o.conn.Exec(ctx, sb.String(), vals)
	if err == nil && affected == 0 {
		err = fmt.Errorf("%w: table %q", ErrRowNotFound, o.desc.Model.Table)
	}
	o.observe("update", start, err, affected)
	return err
}

// Delete removes the row identified by the entity's primary key. Returns
// ErrRowNotFound when no row matches.
func (o *Operations[T]) Delete(ctx context.Context, e *T) error {
	start := time.Now()
	if !o.desc.Model.HasPrimaryKey() {
		return fmt.Errorf("%w: table %q", ErrNoPrimaryKey, o.desc.Model.Table)
	}

	sqlText := fmt.Sprintf("DELETE FROM %s WHERE %s = %s",
		o.desc.Model.Table, o.desc.Model.PrimaryKey, o.conn.Kind().Placeholder(1))

	affected, err := o.conn.Exec(ctx, sqlText, []param.Param{o.desc.PK(e)})
	if err == nil && affected == 0 {
		err = fmt.Errorf("%w: table %q", ErrRowNotFound, o.desc.Model.Table)
	}
	o.observe("delete", start, err, affected)
	return err
}

// SearchByForeignKey resolves the parent side of a relation: given a child
// entity holding a reference in fkColumn, it loads the matching rows of
// this (the parent) table. The relation must be declared on the child with
// this table as its parent.
func (o *Operations[T]) SearchByForeignKey(ctx context.Context, child entity.ForeignKeyable, fk entity.ForeignKey) ([]T, error) {
	start := time.Now()
	if fk.ParentTable != o.desc.Model.Table {
		return nil, fmt.Errorf("%w: relation %q targets table %q, not %q",
			ErrUnknownForeignKey, fk.Column, fk.ParentTable, o.desc.Model.Table)
	}
	value, ok := child.ForeignKeyValue(fk.Column)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownForeignKey, fk.Column)
	}

	res, err := o.FindAllQuery().
		Where(entity.NewFieldValue(entity.NewField(fk.ParentColumn), value), query.Eq).
		Query(ctx)
	if err != nil {
		o.observe("search_by_fk", start, err, 0)
		return nil, err
	}
	out, err := res.Decode()
	o.observe("search_by_fk", start, err, int64(res.Len()))
	return out, err
}

// SearchByReverseForeignKey resolves the child side of a relation: it loads
// every row of this (the child) table whose fk column references the given
// parent key. The relation must be one this table declares.
func (o *Operations[T]) SearchByReverseForeignKey(ctx context.Context, fkColumn string, parentKey param.Param) ([]T, error) {
	start := time.Now()
	if _, ok := o.desc.foreignKey(fkColumn); !ok {
		return nil, fmt.Errorf("%w: table %q declares no relation on %q",
			ErrUnknownForeignKey, o.desc.Model.Table, fkColumn)
	}

	res, err := o.FindAllQuery().
		Where(entity.NewFieldValue(entity.NewField(fkColumn), parentKey), query.Eq).
		Query(ctx)
	if err != nil {
		o.observe("search_by_reverse_fk", start, err, 0)
		return nil, err
	}
	out, err := res.Decode()
	o.observe("search_by_reverse_fk", start, err, int64(res.Len()))
	return out, err
}

// nonKeyValues returns the entity's columns and values with the primary key
// filtered out, aligned positionally.
func (o *Operations[T]) nonKeyValues(e *T) ([]string, []param.Param, error) {
	all := o.desc.Values(e)
	if len(all) != len(o.desc.Model.Columns) {
		return nil, nil, fmt.Errorf("%w: table %q: %d values for %d columns",
			ErrInvalidDescriptor, o.desc.Model.Table, len(all), len(o.desc.Model.Columns))
	}
	cols := make([]string, 0, len(all))
	vals := make([]param.Param, 0, len(all))
	for i, c := range o.desc.Model.Columns {
		if c == o.desc.Model.PrimaryKey {
			continue
		}
		cols = append(cols, c)
		vals = append(vals, all[i])
	}
	return cols, vals, nil
}

// observe reports a finished operation to the log and the observer.
func (o *Operations[T]) observe(operation string, start time.Time, err error, size int64) {
	duration := time.Since(start)
	if err != nil {
		o.log.Error("crud operation failed", err, map[string]interface{}{
			"table":     o.desc.Model.Table,
			"operation": operation,
		})
	} else {
		o.log.Debug("crud operation finished", nil, map[string]interface{}{
			"table":       o.desc.Model.Table,
			"operation":   operation,
			"size":        size,
			"duration_ms": duration.Milliseconds(),
		})
	}
	if o.observer == nil {
		return
	}
	o.observer.ObserveOperation(observability.OperationContext{
		Component:   "crud",
		Operation:   operation,
		Resource:    o.desc.Model.Table,
		SubResource: "",
		Duration:    duration,
		Error:       err,
		Size:        size,
	})
}

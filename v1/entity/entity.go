package entity

import (
	"github.com/Aleph-Alpha/dal/v1/param"
	"github.com/Aleph-Alpha/dal/v1/row"
)

// Field names one mapped column of an entity. Fields are how callers refer
// to columns in builder clauses without spelling raw strings at call sites.
type Field struct {
	column string
}

// NewField builds a Field for the given column name.
func NewField(column string) Field {
	return Field{column: column}
}

// Column returns the database column name the field maps to.
func (f Field) Column() string {
	return f.column
}

// FieldValue pairs a Field with a concrete parameter value. It is the unit
// the query builder consumes: the column name feeds the SQL text, the param
// feeds the placeholder argument list, and the two travel together so they
// cannot drift apart.
type FieldValue struct {
	field Field
	value param.Param
}

// NewFieldValue pairs a field with its value.
func NewFieldValue(f Field, v param.Param) FieldValue {
	return FieldValue{field: f, value: v}
}

// Column returns the column name side of the pair.
func (fv FieldValue) Column() string {
	return fv.field.Column()
}

// Value returns the parameter side of the pair.
func (fv FieldValue) Value() param.Param {
	return fv.value
}

// Model carries the static schema metadata of a mapped type.
type Model struct {
	// Table is the unqualified table name.
	Table string
	// Columns lists every mapped column in declaration order. The order is
	// load-bearing: insert and update statements enumerate columns in this
	// order and align parameters positionally against it.
	Columns []string
	// PrimaryKey is the auto-generated key column, empty when the table
	// has none.
	PrimaryKey string
}

// HasPrimaryKey reports whether the model declares a primary key column.
func (m Model) HasPrimaryKey() bool {
	return m.PrimaryKey != ""
}

// NonKeyColumns returns Columns with the primary key filtered out, in the
// original order. Insert statements use this set since the key is
// server-generated.
func (m Model) NonKeyColumns() []string {
	if !m.HasPrimaryKey() {
		out := make([]string, len(m.Columns))
		copy(out, m.Columns)
		return out
	}
	out := make([]string, 0, len(m.Columns)-1)
	for _, c := range m.Columns {
		if c != m.PrimaryKey {
			out = append(out, c)
		}
	}
	return out
}

// RowMapper rebuilds one entity value from one result row. Implementations
// pull columns by name through the row package's typed extraction, so the
// same mapper serves every backend.
type RowMapper[T any] interface {
	Decode(r row.Row) (T, error)
}

// MapperFunc adapts a plain function to the RowMapper interface.
type MapperFunc[T any] func(r row.Row) (T, error)

// Decode calls f.
func (f MapperFunc[T]) Decode(r row.Row) (T, error) {
	return f(r)
}

// ForeignKey is the static metadata of one declared relation: the local
// column holding the reference and the parent table and column it points at.
type ForeignKey struct {
	Column       string
	ParentTable  string
	ParentColumn string
}

// ForeignKeyable is implemented by entities that declare relations. It
// exposes the current value of a relation's local column so the reverse
// side lookup can filter the parent table by it.
type ForeignKeyable interface {
	// ForeignKeyValue returns the value held in the given foreign key
	// column, or ok=false when the entity declares no such relation.
	ForeignKeyValue(column string) (param.Param, bool)
}

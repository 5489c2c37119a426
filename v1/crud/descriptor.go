package crud

import (
	"fmt"

	"github.com/Aleph-Alpha/dal/v1/entity"
	"github.com/Aleph-Alpha/dal/v1/param"
	"github.com/Aleph-Alpha/dal/v1/row"
)

// Descriptor carries everything the generic operations need to know about
// one entity type. In a generated setup this is the surface a schema
// generator emits; hand-written descriptors work the same way.
type Descriptor[T any] struct {
	// Model is the entity's schema metadata.
	Model entity.Model

	// Mapper rebuilds an entity from one result row.
	Mapper entity.RowMapper[T]

	// Values returns the entity's parameter values aligned positionally
	// with Model.Columns.
	Values func(*T) []param.Param

	// PK returns the entity's current primary key value. Required when
	// Model declares a primary key.
	PK func(*T) param.Param

	// SetPK writes a server-generated key from the returned row back onto
	// the entity. Required when Model declares a primary key.
	SetPK func(*T, row.Row) error

	// ForeignKeys lists the entity's declared relations.
	ForeignKeys []entity.ForeignKey
}

// validate checks the descriptor for structural completeness.
func (d Descriptor[T]) validate() error {
	if d.Model.Table == "" {
		return fmt.Errorf("%w: empty table name", ErrInvalidDescriptor)
	}
	if len(d.Model.Columns) == 0 {
		return fmt.Errorf("%w: table %q declares no columns", ErrInvalidDescriptor, d.Model.Table)
	}
	if d.Mapper == nil {
		return fmt.Errorf("%w: table %q has no row mapper", ErrInvalidDescriptor, d.Model.Table)
	}
	if d.Values == nil {
		return fmt.Errorf("%w: table %q has no values accessor", ErrInvalidDescriptor, d.Model.Table)
	}
	if d.Model.HasPrimaryKey() {
		if d.PK == nil || d.SetPK == nil {
			return fmt.Errorf("%w: table %q declares primary key %q but lacks PK accessors",
				ErrInvalidDescriptor, d.Model.Table, d.Model.PrimaryKey)
		}
		found := false
		for _, c := range d.Model.Columns {
			if c == d.Model.PrimaryKey {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("%w: primary key %q is not a column of table %q",
				ErrInvalidDescriptor, d.Model.PrimaryKey, d.Model.Table)
		}
	}
	return nil
}

// foreignKey looks up a declared relation by its local column.
func (d Descriptor[T]) foreignKey(column string) (entity.ForeignKey, bool) {
	for _, fk := range d.ForeignKeys {
		if fk.Column == column {
			return fk, true
		}
	}
	return entity.ForeignKey{}, false
}

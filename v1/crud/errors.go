package crud

import "errors"

var (
	// ErrInvalidDescriptor is returned when a descriptor is structurally
	// incomplete or its accessors disagree with its column set.
	ErrInvalidDescriptor = errors.New("crud: invalid descriptor")

	// ErrNoPrimaryKey is returned when a key-based operation runs against
	// an entity without a declared primary key.
	ErrNoPrimaryKey = errors.New("crud: entity has no primary key")

	// ErrRowNotFound is returned when an update or delete by primary key
	// affects no rows.
	ErrRowNotFound = errors.New("crud: row not found")

	// ErrUnknownForeignKey is returned when a relation lookup names a
	// foreign key the entity does not declare.
	ErrUnknownForeignKey = errors.New("crud: unknown foreign key")

	// ErrNoLogger is returned when Operations are constructed without a
	// logger.
	ErrNoLogger = errors.New("crud: no logger")
)

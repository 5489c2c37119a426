package row

import "errors"

// Common row decoding errors.
var (
	// ErrUnsupportedBackend is returned when a row operation is invoked for
	// a backend tag this package does not implement. This indicates a wiring
	// bug, not bad data.
	ErrUnsupportedBackend = errors.New("row: unsupported backend")

	// ErrColumnNotFound is returned when the requested column name is absent
	// from the row's column set.
	ErrColumnNotFound = errors.New("row: column not found")

	// ErrTypeMismatch is returned when a column is present but its native
	// value cannot decode into the requested Go type. NULL in a non-optional
	// extraction is a type mismatch, never a zero value.
	ErrTypeMismatch = errors.New("row: type mismatch")

	// ErrShapeMismatch is returned when a row is constructed with a value
	// count that does not match its column count.
	ErrShapeMismatch = errors.New("row: column/value count mismatch")
)

// IsColumnNotFound checks if the error is a missing-column error.
func IsColumnNotFound(err error) bool {
	return errors.Is(err, ErrColumnNotFound)
}

// IsTypeMismatch checks if the error is a decode type mismatch.
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

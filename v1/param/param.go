package param

import "time"

// Scalar is the closed set of application-level scalar types that can travel
// as query parameters. It matches the set the row package can extract, so
// every value that goes in can come back out.
type Scalar interface {
	bool | int16 | int32 | int64 | float32 | float64 | string | time.Time
}

// Param is a value encoded for transport to either backend.
//
// A Param is borrowed for the duration of one query execution: callers build
// the parameter list, hand it to the executor, and must not retain it past
// the call.
type Param interface {
	// PostgresArg returns the argument as pgx binds it. pgx maps Go scalar
	// types onto the matching PostgreSQL wire types directly (int16 to int2,
	// int32 to int4, float32 to float4, ...), so values pass through
	// unchanged; absent optionals return nil.
	PostgresArg() any

	// SQLServerArg returns the argument as go-mssqldb binds it. The TDS
	// driver works in database/sql's 8-byte parameter classes, so narrow
	// numeric types widen here (int16/int32 to int64, float32 to float64);
	// absent optionals return nil.
	SQLServerArg() any
}

// value is the one Param implementation. valid=false represents the absent
// optional and encodes as NULL on both backends.
type value[T Scalar] struct {
	v     T
	valid bool
}

// Value encodes a present scalar.
func Value[T Scalar](v T) Param {
	return value[T]{v: v, valid: true}
}

// Null encodes an absent optional of type T.
func Null[T Scalar]() Param {
	return value[T]{}
}

// NullableValue encodes an optional scalar held as a pointer:
// a nil pointer encodes as NULL, otherwise as the pointed-to value.
func NullableValue[T Scalar](v *T) Param {
	if v == nil {
		return value[T]{}
	}
	return value[T]{v: *v, valid: true}
}

func (p value[T]) PostgresArg() any {
	if !p.valid {
		return nil
	}
	return p.v
}

func (p value[T]) SQLServerArg() any {
	if !p.valid {
		return nil
	}
	switch v := any(p.v).(type) {
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case float32:
		return float64(v)
	default:
		return p.v
	}
}

// PostgresArgs flattens a parameter list into the positional argument slice
// pgx expects.
func PostgresArgs(params []Param) []any {
	args := make([]any, len(params))
	for i, p := range params {
		args[i] = p.PostgresArg()
	}
	return args
}

// SQLServerArgs flattens a parameter list into the positional argument slice
// go-mssqldb expects (bound as @p1..@pN in order).
func SQLServerArgs(params []Param) []any {
	args := make([]any, len(params))
	for i, p := range params {
		args[i] = p.SQLServerArg()
	}
	return args
}

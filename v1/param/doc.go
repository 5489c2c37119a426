// Package param encodes application-level scalar values into the parameter
// representation each supported backend's client library binds natively.
//
// # Architecture
//
// The package exposes a single small interface, Param, with one conversion
// per backend:
//
//	type Param interface {
//	    PostgresArg() any
//	    SQLServerArg() any
//	}
//
// and a single generic implementation covering every supported scalar type
// (bool, int16, int32, int64, float32, float64, string, time.Time) and its
// optional form. There is deliberately no per-type implementation zoo: one
// generic value type parameterized by the scalar constraint gives every
// scalar exactly one encoding per backend, checked at compile time.
//
// Both conversions are total. A well-typed value can always be encoded; no
// runtime type inspection happens on the encode path.
//
// # NULL handling
//
// An absent optional encodes to the backend's native NULL (an untyped nil
// argument, which both pgx and go-mssqldb bind as SQL NULL). It is never
// encoded as a zero value or any other sentinel.
//
// # Usage
//
//	params := []param.Param{
//	    param.Value(int32(1)),
//	    param.Value("LEC"),
//	    param.Null[string](),        // SQL NULL
//	    param.NullableValue(maybe),  // *T, nil pointer becomes SQL NULL
//	}
//
// String values are passed through by reference semantics: Go strings are
// immutable views over their backing array, so handing the same string to
// the driver never copies the text at this layer.
package param

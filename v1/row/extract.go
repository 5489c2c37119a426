package row

import (
	"fmt"
	"math"
	"time"

	"github.com/Aleph-Alpha/dal/v1/backend"
	"github.com/Aleph-Alpha/dal/v1/param"
)

// Extract reads the named column as V. The column must be present and
// non-NULL; a NULL value is a type mismatch because the caller declared the
// column mandatory by choosing Extract over ExtractOptional.
func Extract[V param.Scalar](r Row, column string) (V, error) {
	var zero V
	raw, col, err := r.lookup(column)
	if err != nil {
		return zero, err
	}
	if raw == nil {
		return zero, fmt.Errorf("%w: column %q is NULL, want %T", ErrTypeMismatch, column, zero)
	}
	return decode[V](r.kind, col, raw)
}

// ExtractOptional reads the named column as *V, mapping SQL NULL to nil.
// A missing column is still an error: optionality is about the value, not
// the column's presence in the result set.
func ExtractOptional[V param.Scalar](r Row, column string) (*V, error) {
	raw, col, err := r.lookup(column)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	v, err := decode[V](r.kind, col, raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func decode[V param.Scalar](kind backend.Kind, col Column, raw any) (V, error) {
	var zero V
	var (
		ok  bool
		out V
	)
	switch kind {
	case backend.Postgres:
		out, ok = decodePostgres[V](raw)
	case backend.SQLServer:
		out, ok = decodeSQLServer[V](raw)
	default:
		return zero, fmt.Errorf("%w: %s", ErrUnsupportedBackend, kind)
	}
	if !ok {
		return zero, fmt.Errorf("%w: column %q holds %T (%s), want %T",
			ErrTypeMismatch, col.Name, raw, col.Type, zero)
	}
	return out, nil
}

// decodePostgres converts a pgx native value into V. pgx already decodes
// the wire format into the Go type matching the column's OID, so only
// lossless widening is applied on top.
func decodePostgres[V param.Scalar](raw any) (V, bool) {
	var out V
	switch p := any(&out).(type) {
	case *bool:
		v, ok := raw.(bool)
		if !ok {
			return out, false
		}
		*p = v
	case *int16:
		v, ok := raw.(int16)
		if !ok {
			return out, false
		}
		*p = v
	case *int32:
		switch v := raw.(type) {
		case int32:
			*p = v
		case int16:
			*p = int32(v)
		default:
			return out, false
		}
	case *int64:
		switch v := raw.(type) {
		case int64:
			*p = v
		case int32:
			*p = int64(v)
		case int16:
			*p = int64(v)
		default:
			return out, false
		}
	case *float32:
		v, ok := raw.(float32)
		if !ok {
			return out, false
		}
		*p = v
	case *float64:
		switch v := raw.(type) {
		case float64:
			*p = v
		case float32:
			*p = float64(v)
		default:
			return out, false
		}
	case *string:
		v, ok := raw.(string)
		if !ok {
			return out, false
		}
		*p = v
	case *time.Time:
		v, ok := raw.(time.Time)
		if !ok {
			return out, false
		}
		*p = v
	default:
		return out, false
	}
	return out, true
}

// decodeSQLServer converts a database/sql native value into V. The driver
// surfaces integers as int64 and floats as float64, so narrowing to the
// requested width is range-checked rather than assumed.
func decodeSQLServer[V param.Scalar](raw any) (V, bool) {
	var out V
	switch p := any(&out).(type) {
	case *bool:
		v, ok := raw.(bool)
		if !ok {
			return out, false
		}
		*p = v
	case *int16:
		v, ok := raw.(int64)
		if !ok || v < math.MinInt16 || v > math.MaxInt16 {
			return out, false
		}
		*p = int16(v)
	case *int32:
		v, ok := raw.(int64)
		if !ok || v < math.MinInt32 || v > math.MaxInt32 {
			return out, false
		}
		*p = int32(v)
	case *int64:
		v, ok := raw.(int64)
		if !ok {
			return out, false
		}
		*p = v
	case *float32:
		v, ok := raw.(float64)
		if !ok || v < -math.MaxFloat32 || v > math.MaxFloat32 {
			return out, false
		}
		*p = float32(v)
	case *float64:
		v, ok := raw.(float64)
		if !ok {
			return out, false
		}
		*p = v
	case *string:
		switch v := raw.(type) {
		case string:
			*p = v
		case []byte:
			*p = string(v)
		default:
			return out, false
		}
	case *time.Time:
		v, ok := raw.(time.Time)
		if !ok {
			return out, false
		}
		*p = v
	default:
		return out, false
	}
	return out, true
}

package param

import (
	"testing"
	"time"
)

func TestValuePostgresArgPassesThrough(t *testing.T) {
	cases := []struct {
		name string
		p    Param
		want any
	}{
		{"bool", Value(true), true},
		{"int16", Value(int16(7)), int16(7)},
		{"int32", Value(int32(42)), int32(42)},
		{"int64", Value(int64(-9)), int64(-9)},
		{"float32", Value(float32(1.5)), float32(1.5)},
		{"float64", Value(2.25), 2.25},
		{"string", Value("LEC"), "LEC"},
	}
	for _, tc := range cases {
		if got := tc.p.PostgresArg(); got != tc.want {
			t.Errorf("%s: expected %#v, got %#v", tc.name, tc.want, got)
		}
	}
}

func TestValueSQLServerArgWidensNarrowNumerics(t *testing.T) {
	cases := []struct {
		name string
		p    Param
		want any
	}{
		{"bool", Value(true), true},
		{"int16 widens", Value(int16(7)), int64(7)},
		{"int32 widens", Value(int32(42)), int64(42)},
		{"int64", Value(int64(-9)), int64(-9)},
		{"float32 widens", Value(float32(1.5)), float64(float32(1.5))},
		{"float64", Value(2.25), 2.25},
		{"string", Value("LEC"), "LEC"},
	}
	for _, tc := range cases {
		if got := tc.p.SQLServerArg(); got != tc.want {
			t.Errorf("%s: expected %#v, got %#v", tc.name, tc.want, got)
		}
	}
}

func TestTimePassesThroughOnBothBackends(t *testing.T) {
	ts := time.Date(2023, 4, 1, 12, 30, 0, 0, time.UTC)
	p := Value(ts)

	got, ok := p.PostgresArg().(time.Time)
	if !ok || !got.Equal(ts) {
		t.Errorf("postgres: expected %v, got %#v", ts, p.PostgresArg())
	}
	got, ok = p.SQLServerArg().(time.Time)
	if !ok || !got.Equal(ts) {
		t.Errorf("sqlserver: expected %v, got %#v", ts, p.SQLServerArg())
	}
}

func TestNullEncodesAsNilOnBothBackends(t *testing.T) {
	for name, p := range map[string]Param{
		"Null[string]":  Null[string](),
		"Null[int32]":   Null[int32](),
		"Null[bool]":    Null[bool](),
		"Null[float64]": Null[float64](),
	} {
		if got := p.PostgresArg(); got != nil {
			t.Errorf("%s postgres: expected nil, got %#v", name, got)
		}
		if got := p.SQLServerArg(); got != nil {
			t.Errorf("%s sqlserver: expected nil, got %#v", name, got)
		}
	}
}

func TestNullableValue(t *testing.T) {
	v := int32(5)
	p := NullableValue(&v)
	if got := p.PostgresArg(); got != int32(5) {
		t.Errorf("expected 5, got %#v", got)
	}
	if got := p.SQLServerArg(); got != int64(5) {
		t.Errorf("expected widened 5, got %#v", got)
	}

	p = NullableValue[int32](nil)
	if p.PostgresArg() != nil || p.SQLServerArg() != nil {
		t.Error("nil pointer must encode as NULL on both backends")
	}
}

func TestArgFlattening(t *testing.T) {
	params := []Param{Value(int32(1)), Value("a"), Null[string]()}

	pg := PostgresArgs(params)
	if len(pg) != 3 {
		t.Fatalf("expected 3 args, got %d", len(pg))
	}
	if pg[0] != int32(1) || pg[1] != "a" || pg[2] != nil {
		t.Errorf("unexpected postgres args: %#v", pg)
	}

	ms := SQLServerArgs(params)
	if ms[0] != int64(1) || ms[1] != "a" || ms[2] != nil {
		t.Errorf("unexpected sqlserver args: %#v", ms)
	}
}

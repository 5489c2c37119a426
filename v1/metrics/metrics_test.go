package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestMetrics() *Metrics {
	return NewMetrics(Config{Address: ":0", ServiceName: "dal-test"})
}

func TestIncrementQueries(t *testing.T) {
	m := newTestMetrics()
	m.IncrementQueries("primary", "find_all", "success")
	m.IncrementQueries("primary", "find_all", "success")
	m.IncrementQueries("primary", "insert", "error")

	got := testutil.ToFloat64(m.queriesTotal.WithLabelValues("primary", "find_all", "success"))
	if got != 2 {
		t.Errorf("expected 2 successful find_all queries, got %v", got)
	}
	got = testutil.ToFloat64(m.queriesTotal.WithLabelValues("primary", "insert", "error"))
	if got != 1 {
		t.Errorf("expected 1 failed insert, got %v", got)
	}
}

func TestRecordQueryDuration(t *testing.T) {
	m := newTestMetrics()
	m.RecordQueryDuration(time.Now().Add(-10*time.Millisecond), "primary", "find_by_pk")

	count := testutil.CollectAndCount(m.queryDuration)
	if count != 1 {
		t.Errorf("expected one histogram series, got %d", count)
	}
}

func TestSetOpenConnections(t *testing.T) {
	m := newTestMetrics()
	m.SetOpenConnections(4, "primary", "postgres")
	m.SetOpenConnections(2, "reporting", "sqlserver")

	if got := testutil.ToFloat64(m.openConnections.WithLabelValues("primary", "postgres")); got != 4 {
		t.Errorf("expected gauge 4, got %v", got)
	}
}

func TestCreateFactoriesRegister(t *testing.T) {
	m := newTestMetrics()
	c := m.CreateCounter("rows_decoded_total", "Rows decoded into entities", []string{"table"})
	c.WithLabelValues("leagues").Add(3)

	if got := testutil.ToFloat64(c.WithLabelValues("leagues")); got != 3 {
		t.Errorf("expected 3, got %v", got)
	}
	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "rows_decoded_total" {
			found = true
		}
	}
	if !found {
		t.Error("created counter must be registered in the service registry")
	}
}

package backend

import "testing"

func TestParseKind(t *testing.T) {
	k, err := ParseKind("postgres")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != Postgres {
		t.Errorf("expected Postgres, got %v", k)
	}

	k, err = ParseKind("sqlserver")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != SQLServer {
		t.Errorf("expected SQLServer, got %v", k)
	}

	if _, err := ParseKind("oracle"); err == nil {
		t.Error("expected error for unsupported backend")
	}
	if _, err := ParseKind(""); err == nil {
		t.Error("expected error for empty backend")
	}
}

func TestPlaceholder(t *testing.T) {
	if got := Postgres.Placeholder(1); got != "$1" {
		t.Errorf("expected $1, got %s", got)
	}
	if got := Postgres.Placeholder(12); got != "$12" {
		t.Errorf("expected $12, got %s", got)
	}
	if got := SQLServer.Placeholder(1); got != "@p1" {
		t.Errorf("expected @p1, got %s", got)
	}
	if got := SQLServer.Placeholder(3); got != "@p3" {
		t.Errorf("expected @p3, got %s", got)
	}
}

func TestValid(t *testing.T) {
	if Unknown.Valid() {
		t.Error("Unknown must not be valid")
	}
	if !Postgres.Valid() || !SQLServer.Valid() {
		t.Error("supported backends must be valid")
	}
}

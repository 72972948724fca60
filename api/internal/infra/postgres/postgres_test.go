package postgres

import (
	"os"
	"strings"
	"testing"
)

// every store operation must be bounded server-side, a hung postgres fails
// the statement instead of the handler
func TestBuildDSNBounds(t *testing.T) {
	dsn := buildDSN("localhost", "postgres", "lol", "test", 5432, "disable")

	for _, want := range []string{
		"statement_timeout=5000",
		"connect_timeout=5",
		"host=localhost",
		"dbname=test",
		"sslmode=disable",
	} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("dsn missing %q: %s", want, dsn)
		}
	}
}

func TestPoolBounds(t *testing.T) {
	if os.Getenv("TEST_PG") == "" {
		t.Skip("TEST_PG not set")
	}

	db := InitTest(TEST_CONFIG)
	t.Cleanup(func() { DropTables(db) })

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	if got := sqlDB.Stats().MaxOpenConnections; got != MAX_OPEN_CONNS {
		t.Fatalf("max open conns: got %d, want %d", got, MAX_OPEN_CONNS)
	}
}

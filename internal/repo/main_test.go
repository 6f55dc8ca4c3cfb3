package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/holiday-planner/backend/testutil"
)

// TestMain applies all pending migrations to the test database before any
// integration test runs. Without TEST_DATABASE_URL the integration tests
// skip themselves and only the pgxmock tests execute.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	// goose needs database/sql, not a pgx pool.
	db := testutil.MustOpenSQLDB(dsn)

	provider, err := testutil.NewMigrationProvider(db)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}
	db.Close()

	os.Exit(m.Run())
}

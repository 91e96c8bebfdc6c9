package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/trip-planner/backend/testutil"
)

// TestMain migrates the test database once for the whole package so
// individual tests never need to think about schema state.
// Without TEST_DATABASE_URL the Postgres tests skip themselves.
func TestMain(m *testing.M) {
	if dsn := os.Getenv(testutil.DatabaseURLEnv); dsn != "" {
		if err := testutil.Migrate(context.Background(), dsn); err != nil {
			log.Fatalf("TestMain: %v", err)
		}
	}
	os.Exit(m.Run())
}

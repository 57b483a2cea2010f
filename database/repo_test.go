package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB opens a fresh migrated database in a temp directory and
// seeds one user to own the test data.
func setupTestDB(t *testing.T) (*DB, int64, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "recall-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := New(dbPath, 4)
	require.NoError(t, err)

	err = db.Migrate()
	require.NoError(t, err)

	user, err := NewUserRepository(db).Create("tester", "tester@example.com", "not-a-real-hash")
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return db, user.ID, cleanup
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

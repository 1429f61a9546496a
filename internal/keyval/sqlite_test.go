package keyval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='kv'").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "kv table not found")
}

func TestSQLiteStorage_SetGetRemove(t *testing.T) {
	store := NewSQLiteStorage(NewTestDB(t))

	_, ok, err := store.GetItem("auth-storage")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.SetItem("auth-storage", `{"state":{}}`))

	value, ok, err := store.GetItem("auth-storage")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"state":{}}`, value)

	require.NoError(t, store.RemoveItem("auth-storage"))

	_, ok, err = store.GetItem("auth-storage")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLiteStorage_Overwrite(t *testing.T) {
	store := NewSQLiteStorage(NewTestDB(t))

	require.NoError(t, store.SetItem("installation-id", "first"))
	require.NoError(t, store.SetItem("installation-id", "second"))

	value, ok, err := store.GetItem("installation-id")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "second", value)
}

func TestSQLiteStorage_RemoveMissing(t *testing.T) {
	store := NewSQLiteStorage(NewTestDB(t))
	require.NoError(t, store.RemoveItem("never-set"))
}

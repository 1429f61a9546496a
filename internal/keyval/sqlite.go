package keyval

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection used for durable client storage.
type DB struct {
	*sql.DB
}

// New opens (or creates) the SQLite database at the given path.
// Use ":memory:" for an ephemeral database in tests.
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single writer avoids SQLITE_BUSY on concurrent store writes.
	db.SetMaxOpenConns(1)

	return &DB{db}, nil
}

// RunMigrations creates the storage schema if it does not exist.
func (db *DB) RunMigrations() error {
	migration := `
CREATE TABLE IF NOT EXISTS kv (
    name TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`
	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SQLiteStorage implements Storage on top of a kv table.
type SQLiteStorage struct {
	db *DB
}

// NewSQLiteStorage creates a Storage backed by the given database.
func NewSQLiteStorage(db *DB) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

// SetItem stores value under name, replacing any previous value.
func (s *SQLiteStorage) SetItem(name, value string) error {
	query := `
		INSERT INTO kv (name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.Exec(query, name, value); err != nil {
		return fmt.Errorf("failed to set %q: %w", name, err)
	}
	return nil
}

// GetItem returns the value stored under name.
func (s *SQLiteStorage) GetItem(name string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %q: %w", name, err)
	}
	return value, true, nil
}

// RemoveItem deletes the value stored under name.
func (s *SQLiteStorage) RemoveItem(name string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to remove %q: %w", name, err)
	}
	return nil
}

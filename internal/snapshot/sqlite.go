package snapshot

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sulta24/feedback-app/internal/board"
	"github.com/sulta24/feedback-app/internal/snapshot/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore persists snapshots in a SQLite key-value table. Compared to
// the filesystem store it gives transactional writes and keeps the board in
// a single inspectable file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) the snapshot database at the given path
// and migrates it to the latest schema.
// path can be a file path or ":memory:" for an in-memory database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases coherent and is plenty
	// for a single-user board.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := migrations.MigrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating snapshot database: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Load retrieves the snapshot stored under key.
func (s *SQLiteStore) Load(key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM snapshots WHERE key = ?", key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading snapshot: %w", err)
	}
	return data, true, nil
}

// Save stores the snapshot under key, replacing any previous value.
func (s *SQLiteStore) Save(key string, data []byte) error {
	savedAt := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO snapshots (key, data, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		key, data, savedAt,
	)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Compile-time check that SQLiteStore implements board.SnapshotStore
var _ board.SnapshotStore = (*SQLiteStore)(nil)

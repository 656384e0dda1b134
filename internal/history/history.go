// Package history persists an audit log of rename outcomes in a local
// sqlite database, so a batch run can be reviewed after the fact.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Statuses recorded for an outcome.
const (
	StatusApplied = "applied"
	StatusPlanned = "planned"
	StatusFailed  = "failed"
)

const schema = `
CREATE TABLE IF NOT EXISTS rename_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	operation TEXT NOT NULL,
	source_path TEXT NOT NULL,
	target_path TEXT NOT NULL,
	status TEXT NOT NULL,
	reason TEXT,
	executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_rename_log_executed_at ON rename_log(executed_at);
`

// Entry is one logged rename outcome.
type Entry struct {
	ID         int64
	Operation  string
	SourcePath string
	TargetPath string
	Status     string
	Reason     string
	ExecutedAt time.Time
}

// DB is the rename history store.
type DB struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("unable to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("unable to open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to initialize history schema: %w", err)
	}

	return &DB{db: db}, nil
}

// OpenMemory opens an in-memory history database, used in tests.
func OpenMemory() (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &DB{db: db}, nil
}

// Close closes the database.
func (h *DB) Close() error {
	return h.db.Close()
}

// RecordOutcome logs one rename outcome. Satisfies renamer.Recorder.
func (h *DB) RecordOutcome(operation, from, to, status, reason string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.db.Exec(`
		INSERT INTO rename_log (operation, source_path, target_path, status, reason)
		VALUES (?, ?, ?, ?, ?)
	`, operation, from, to, status, reason)
	return err
}

// Recent returns the most recent entries, newest first.
func (h *DB) Recent(limit int) ([]Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rows, err := h.db.Query(`
		SELECT id, operation, source_path, target_path, status, COALESCE(reason, ''), executed_at
		FROM rename_log
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Operation, &e.SourcePath, &e.TargetPath, &e.Status, &e.Reason, &e.ExecutedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Stats returns counts of logged outcomes per status.
func (h *DB) Stats() (map[string]int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rows, err := h.db.Query(`SELECT status, COUNT(*) FROM rename_log GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats[status] = count
	}
	return stats, rows.Err()
}

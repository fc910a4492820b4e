package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	gverrors "ghvault.dev/ghvault/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS backup_runs (
	id          TEXT PRIMARY KEY,
	started_at  INTEGER NOT NULL,
	finished_at INTEGER NOT NULL,
	destination TEXT NOT NULL,
	total       INTEGER NOT NULL,
	cloned      INTEGER NOT NULL,
	updated     INTEGER NOT NULL,
	failed      INTEGER NOT NULL,
	error       TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_backup_runs_started_at ON backup_runs(started_at);
`

// Store persists backup runs in a sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, gverrors.NewHistoryError("Open", "database path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, gverrors.NewHistoryErrorWithCause("Open", "failed to create database directory", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, gverrors.NewHistoryErrorWithCause("Open", "failed to open database", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, gverrors.NewHistoryErrorWithCause("Open", "failed to initialize schema", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one run. An empty ID is filled in with a fresh UUID.
func (s *Store) Record(run Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO backup_runs (id, started_at, finished_at, destination, total, cloned, updated, failed, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.UnixMilli(),
		run.FinishedAt.UnixMilli(),
		run.Destination,
		run.Total,
		run.Cloned,
		run.Updated,
		run.Failed,
		run.Error,
	)
	if err != nil {
		return gverrors.NewHistoryErrorWithCause("Record", "failed to insert run", err)
	}

	return nil
}

// List returns the most recent runs, newest first, capped at limit.
func (s *Store) List(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, started_at, finished_at, destination, total, cloned, updated, failed, error
		 FROM backup_runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, gverrors.NewHistoryErrorWithCause("List", "query failed", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var started, finished int64
		if err := rows.Scan(&run.ID, &started, &finished, &run.Destination,
			&run.Total, &run.Cloned, &run.Updated, &run.Failed, &run.Error); err != nil {
			return nil, gverrors.NewHistoryErrorWithCause("List", "scan failed", err)
		}
		run.StartedAt = time.UnixMilli(started)
		run.FinishedAt = time.UnixMilli(finished)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, gverrors.NewHistoryErrorWithCause("List", "row iteration failed", err)
	}

	return runs, nil
}

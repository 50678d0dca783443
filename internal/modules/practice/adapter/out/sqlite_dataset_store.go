package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tempo/internal/modules/practice/domain"
	practiceout "tempo/internal/modules/practice/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteDatasetStore reads the static session dataset from a sqlite file.
// The store is a read-only collaborator; it never writes session rows.
type SQLiteDatasetStore struct {
	db *sql.DB
}

func NewSQLiteDatasetStore(dbPath string) (practiceout.DatasetStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteDatasetStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteDatasetStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  started_at TEXT PRIMARY KEY,
  duration_seconds INTEGER NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteDatasetStore) Load(ctx context.Context) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT started_at, duration_seconds FROM sessions ORDER BY started_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []domain.Session
	for rows.Next() {
		var startedAt string
		var duration int
		if err := rows.Scan(&startedAt, &duration); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		start, err := time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse session start %q: %w", startedAt, err)
		}
		sessions = append(sessions, domain.Session{
			ID:          domain.DatasetSessionID(start),
			StartedAt:   start.UTC(),
			DurationSec: duration,
			Source:      domain.SourceDataset,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session rows: %w", err)
	}
	return sessions, nil
}

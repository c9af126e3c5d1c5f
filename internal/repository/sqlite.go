package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/churnpilot/churnpilot/internal/entity"
)

// SQLiteStore is the single-node default: the same counter and audit
// surface as PostgresStore, on an embedded database file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "churnpilot.db"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// SQLite serializes writers; a single connection avoids SQLITE_BUSY
	// under concurrent increments.
	db.SetMaxOpenConns(1)
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS extraction_counters (
    counter_key TEXT PRIMARY KEY,
    count       INTEGER NOT NULL DEFAULT 0,
    updated_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS extraction_audits (
    id              TEXT PRIMARY KEY,
    user_id         TEXT NOT NULL,
    model_name      TEXT NOT NULL,
    extraction_type TEXT NOT NULL,
    input_tokens    INTEGER NOT NULL DEFAULT 0,
    output_tokens   INTEGER NOT NULL DEFAULT 0,
    success         INTEGER NOT NULL,
    created_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_extraction_audits_user
    ON extraction_audits (user_id, created_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure usage schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) IncrementAndGet(ctx context.Context, key string) (int64, error) {
	const q = `
INSERT INTO extraction_counters (counter_key, count, updated_at)
VALUES (?, 1, datetime('now'))
ON CONFLICT (counter_key)
DO UPDATE SET count = count + 1, updated_at = datetime('now')
RETURNING count`

	var count int64
	if err := s.db.QueryRowContext(ctx, q, key).Scan(&count); err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", key, err)
	}
	return count, nil
}

func (s *SQLiteStore) Read(ctx context.Context, key string) (int64, error) {
	const q = `SELECT count FROM extraction_counters WHERE counter_key = ?`

	var count int64
	err := s.db.QueryRowContext(ctx, q, key).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("read counter %s: %w", key, err)
	}
	return count, nil
}

func (s *SQLiteStore) Append(ctx context.Context, audit *entity.ExtractionAudit) error {
	const q = `
INSERT INTO extraction_audits
    (id, user_id, model_name, extraction_type, input_tokens, output_tokens, success, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, q,
		audit.ID.String(), audit.UserID.String(), audit.ModelName, audit.ExtractionType,
		audit.InputTokens, audit.OutputTokens, audit.Success,
		audit.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"))
	if err != nil {
		return fmt.Errorf("insert extraction audit: %w", err)
	}
	return nil
}

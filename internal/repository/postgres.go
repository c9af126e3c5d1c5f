// Package repository provides the persistent counter and audit stores
// behind the usage limiter.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/churnpilot/churnpilot/internal/entity"
)

// PostgresStore implements usage.CounterStore and usage.AuditLog on a
// pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	cfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

// EnsureSchema creates the usage tables when they do not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS extraction_counters (
    counter_key TEXT PRIMARY KEY,
    count       BIGINT NOT NULL DEFAULT 0,
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS extraction_audits (
    id              UUID PRIMARY KEY,
    user_id         UUID NOT NULL,
    model_name      TEXT NOT NULL,
    extraction_type TEXT NOT NULL,
    input_tokens    INTEGER NOT NULL DEFAULT 0,
    output_tokens   INTEGER NOT NULL DEFAULT 0,
    success         BOOLEAN NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_extraction_audits_user
    ON extraction_audits (user_id, created_at);
`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure usage schema: %w", err)
	}
	return nil
}

// IncrementAndGet bumps the counter for key by one and returns the new
// value. The upsert makes the read-modify-write a single atomic statement.
func (s *PostgresStore) IncrementAndGet(ctx context.Context, key string) (int64, error) {
	const q = `
INSERT INTO extraction_counters (counter_key, count, updated_at)
VALUES ($1, 1, now())
ON CONFLICT (counter_key)
DO UPDATE SET count = extraction_counters.count + 1, updated_at = now()
RETURNING count`

	var count int64
	if err := s.pool.QueryRow(ctx, q, key).Scan(&count); err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", key, err)
	}
	return count, nil
}

func (s *PostgresStore) Read(ctx context.Context, key string) (int64, error) {
	const q = `SELECT count FROM extraction_counters WHERE counter_key = $1`

	var count int64
	err := s.pool.QueryRow(ctx, q, key).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("read counter %s: %w", key, err)
	}
	return count, nil
}

func (s *PostgresStore) Append(ctx context.Context, audit *entity.ExtractionAudit) error {
	const q = `
INSERT INTO extraction_audits
    (id, user_id, model_name, extraction_type, input_tokens, output_tokens, success, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.pool.Exec(ctx, q,
		audit.ID, audit.UserID, audit.ModelName, audit.ExtractionType,
		audit.InputTokens, audit.OutputTokens, audit.Success, audit.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert extraction audit: %w", err)
	}
	return nil
}

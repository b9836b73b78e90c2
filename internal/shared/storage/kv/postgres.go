package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGStore keeps entries in the kv_entries table (see storage/db migrations).
type PGStore struct {
	DB    *sql.DB
	Quota int64
}

// Get reads the value stored under key.
func (s *PGStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.DB == nil {
		return "", false, ErrUnavailable
	}
	const query = `SELECT value FROM kv_entries WHERE key = $1`
	var value string
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: select %s: %w", ErrUnavailable, key, err)
	}
	return value, true, nil
}

// Set upserts value under key. The quota check and the write share one transaction.
func (s *PGStore) Set(ctx context.Context, key, value string) error {
	if s.DB == nil {
		return ErrUnavailable
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrUnavailable, err)
	}
	defer tx.Rollback()

	if s.Quota > 0 {
		const usedQuery = `
SELECT COALESCE(SUM(octet_length(key) + octet_length(value)), 0)
FROM kv_entries
WHERE key <> $1`
		var used int64
		if err := tx.QueryRowContext(ctx, usedQuery, key).Scan(&used); err != nil {
			return fmt.Errorf("%w: usage: %w", ErrUnavailable, err)
		}
		if next := used + entrySize(key, value); next > s.Quota {
			return fmt.Errorf("%w: need %d bytes, quota %d", ErrQuotaExceeded, next, s.Quota)
		}
	}

	const upsert = `
INSERT INTO kv_entries (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := tx.ExecContext(ctx, upsert, key, value); err != nil {
		return fmt.Errorf("%w: upsert %s: %w", ErrUnavailable, key, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrUnavailable, err)
	}
	return nil
}

var _ Store = (*PGStore)(nil)

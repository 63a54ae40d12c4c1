package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements KeyValueStore on a single PostgreSQL table
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL key/value store
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the kv_store table if it does not exist
func (r *PostgresStore) EnsureSchema(ctx context.Context) error {
	sql := `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := r.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("repository: failed to create kv_store table: %w", err)
	}
	return nil
}

// Get reads the value stored under key
func (r *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("repository: failed to read %q: %w", key, err)
	}
	return []byte(value), nil
}

// Put upserts the value stored under key
func (r *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	sql := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.Exec(ctx, sql, key, string(value)); err != nil {
		return fmt.Errorf("repository: failed to write %q: %w", key, err)
	}
	return nil
}

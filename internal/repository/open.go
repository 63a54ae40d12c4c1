package repository

import (
	"context"
	"fmt"

	"fan-globe/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Open builds the KeyValueStore selected by cfg.StorageDriver. The returned
// func releases its resources.
func Open(ctx context.Context, cfg config.Config) (KeyValueStore, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return NewMemoryStore(), func() {}, nil
	case config.StorageFile:
		fs, err := NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			return nil, nil, fmt.Errorf("repository: cannot connect to db: %w", err)
		}
		pg := NewPostgresStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return pg, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("repository: unknown storage driver %q", cfg.StorageDriver)
	}
}

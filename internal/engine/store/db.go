// Package store holds the only persistence writer this module defines:
// RawSnapshotRepository, which saves and loads raw.Graph snapshots behind
// engine.ExportRaw's forbidden-fields firewall. Nothing derived is ever
// written here (spec §6).
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	poolOnce sync.Once
	pool     *pgxpool.Pool
	poolErr  error
)

// Pool returns the process-wide pgx connection pool, built once from the
// DATABASE_URL environment variable on first use.
func Pool(ctx context.Context) (*pgxpool.Pool, error) {
	poolOnce.Do(func() {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			poolErr = fmt.Errorf("store: DATABASE_URL is not set")
			return
		}
		pool, poolErr = pgxpool.New(ctx, dsn)
	})
	return pool, poolErr
}

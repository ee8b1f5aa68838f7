package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vc-platform/decision-engine/internal/engine"
	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// RawSnapshotRepository is the one permitted writer of engine output to
// durable storage. Every write goes through engine.ExportRaw first, so a
// forbidden derived field can never reach the database (spec §6).
type RawSnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewRawSnapshotRepository wraps an existing pool; use store.Pool(ctx) to
// obtain one.
func NewRawSnapshotRepository(pool *pgxpool.Pool) *RawSnapshotRepository {
	return &RawSnapshotRepository{pool: pool}
}

// SaveSnapshot persists one named raw.Graph snapshot, overwriting any
// prior snapshot under the same key.
func (r *RawSnapshotRepository) SaveSnapshot(ctx context.Context, key string, g raw.Graph, policy raw.Policy, asOf time.Time) error {
	data, err := engine.ExportRaw(g, policy)
	if err != nil {
		return fmt.Errorf("store: refusing to save snapshot %q: %w", key, err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO raw_snapshots (key, as_of, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET as_of = EXCLUDED.as_of, payload = EXCLUDED.payload
	`, key, asOf, data)
	return err
}

// LoadSnapshot retrieves and unmarshals the raw.Graph stored under key.
func (r *RawSnapshotRepository) LoadSnapshot(ctx context.Context, key string) (raw.Graph, time.Time, error) {
	var (
		asOf    time.Time
		payload []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT as_of, payload FROM raw_snapshots WHERE key = $1
	`, key).Scan(&asOf, &payload)
	if err != nil {
		return raw.Graph{}, time.Time{}, fmt.Errorf("store: load snapshot %q: %w", key, err)
	}

	var g raw.Graph
	if err := json.Unmarshal(payload, &g); err != nil {
		return raw.Graph{}, time.Time{}, fmt.Errorf("store: decode snapshot %q: %w", key, err)
	}
	return g, asOf, nil
}

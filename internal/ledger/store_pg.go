package ledger

import (
	"context"
	"database/sql"

	"creator-backend/internal/llm"
)

type pgStore struct {
	DB *sql.DB
}

// NewPGStore constructs a Postgres-backed usage store.
func NewPGStore(db *sql.DB) *pgStore {
	return &pgStore{DB: db}
}

// Record upserts the provider row with an atomic in-database increment, so
// concurrent writers never lose updates.
func (s *pgStore) Record(ctx context.Context, provider llm.Provider, cost float64) error {
	_, err := s.DB.ExecContext(ctx, `
INSERT INTO provider_usage (provider, requests, cost, updated_at)
VALUES ($1, 1, $2, now())
ON CONFLICT (provider) DO UPDATE
SET requests = provider_usage.requests + 1,
    cost = provider_usage.cost + EXCLUDED.cost,
    updated_at = now()`, string(provider), cost)
	return err
}

func (s *pgStore) Snapshot(ctx context.Context) (Snapshot, error) {
	rows, err := s.DB.QueryContext(ctx, `
SELECT provider, requests, cost FROM provider_usage ORDER BY provider`)
	if err != nil {
		return Snapshot{}, err
	}
	defer rows.Close()

	var snap Snapshot
	for rows.Next() {
		var rec Record
		var provider string
		if err := rows.Scan(&provider, &rec.Requests, &rec.Cost); err != nil {
			return Snapshot{}, err
		}
		rec.Provider = llm.Provider(provider)
		snap.Providers = append(snap.Providers, rec)
		snap.TotalRequests += rec.Requests
		snap.TotalCost += rec.Cost
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *pgStore) Reset(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM provider_usage`)
	return err
}

package ledger

import (
	"context"

	"creator-backend/internal/llm"
	"creator-backend/internal/pricing"
)

type store interface {
	Record(ctx context.Context, provider llm.Provider, cost float64) error
	Snapshot(ctx context.Context) (Snapshot, error)
	Reset(ctx context.Context) error
}

// Service manages usage counters via an underlying store.
type Service struct {
	store   store
	pricing *pricing.Model
}

// NewService constructs a Service with an in-memory store.
func NewService(model *pricing.Model) *Service {
	return &Service{store: newMemoryStore(), pricing: model}
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(pgStore store, model *pricing.Model) *Service {
	return &Service{store: pgStore, pricing: model}
}

// RecordUsage adds one request and its cost to the provider's counters.
// Safe for concurrent callers; increments are never lost.
func (s *Service) RecordUsage(ctx context.Context, provider llm.Provider, cost float64) error {
	if cost < 0 {
		cost = 0
	}
	return s.store.Record(ctx, provider, cost)
}

// Snapshot returns a copy of all counters, safe to read while writers run.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	return s.store.Snapshot(ctx)
}

// Reset zeroes all counters. Dev-only; production counters are monotone.
func (s *Service) Reset(ctx context.Context) error {
	return s.store.Reset(ctx)
}

// EstimateSavings recomputes savings against the priciest registered rate:
// each provider's actual spend is rescaled to what the same requests would
// have cost at the maximum per-token rate. The percentage is capped at 99
// and a near-zero baseline yields zero savings.
func (s *Service) EstimateSavings(ctx context.Context) (Savings, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return Savings{}, err
	}

	maxRate := s.pricing.MaxRate()
	baseline := 0.0
	for _, rec := range snap.Providers {
		rate, err := s.pricing.Rate(rec.Provider)
		if err != nil || rate <= 0 {
			baseline += rec.Cost
			continue
		}
		baseline += rec.Cost * (maxRate / rate)
	}

	if baseline < 1e-9 {
		return Savings{}, nil
	}

	absolute := baseline - snap.TotalCost
	if absolute < 0 {
		absolute = 0
	}
	percent := absolute / baseline * 100
	if percent > 99 {
		percent = 99
	}
	return Savings{
		BaselineCost: baseline,
		Absolute:     absolute,
		Percent:      percent,
	}, nil
}

package ledger

import (
	"context"
	"sort"
	"sync"

	"creator-backend/internal/llm"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[llm.Provider]*Record
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[llm.Provider]*Record)}
}

func (s *memoryStore) Record(ctx context.Context, provider llm.Provider, cost float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.data[provider]
	if !ok {
		rec = &Record{Provider: provider}
		s.data[provider] = rec
	}
	rec.Requests++
	rec.Cost += cost
	return nil
}

func (s *memoryStore) Snapshot(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{Providers: make([]Record, 0, len(s.data))}
	for _, rec := range s.data {
		snap.Providers = append(snap.Providers, *rec)
		snap.TotalRequests += rec.Requests
		snap.TotalCost += rec.Cost
	}
	sort.Slice(snap.Providers, func(i, j int) bool {
		return snap.Providers[i].Provider < snap.Providers[j].Provider
	})
	return snap, nil
}

func (s *memoryStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[llm.Provider]*Record)
	return nil
}

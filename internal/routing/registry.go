package routing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"creator-backend/internal/llm"
)

// ErrNoProvidersRegistered indicates an empty provider registry.
var ErrNoProvidersRegistered = errors.New("no providers registered")

// ErrDuplicateProvider indicates a provider registered twice.
var ErrDuplicateProvider = errors.New("provider already registered")

// Health is a provider's last-observed availability.
type Health string

const (
	HealthOnline   Health = "online"
	HealthDegraded Health = "degraded"
	HealthOffline  Health = "offline"
)

// ProviderInfo describes one registered provider. Health fields are the
// only mutable part and are updated by health checks.
type ProviderInfo struct {
	ID          llm.Provider  `json:"id"`
	Rate        float64       `json:"rate"`
	Strengths   []string      `json:"strengths"`
	Health      Health        `json:"health"`
	Latency     time.Duration `json:"latencyMs"`
	LastChecked time.Time     `json:"lastChecked"`
}

type registryEntry struct {
	info   ProviderInfo
	client llm.Client
}

// Registry holds the statically registered providers. Providers are added
// at startup and never removed at runtime.
type Registry struct {
	mu      sync.RWMutex
	entries map[llm.Provider]*registryEntry
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[llm.Provider]*registryEntry)}
}

// Register adds a provider with its per-token rate and strength tags.
// New providers start online.
func (r *Registry) Register(client llm.Client, rate float64, strengths []string) error {
	if client == nil {
		return errors.New("client must not be nil")
	}
	id := client.Provider()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateProvider, id)
	}
	r.entries[id] = &registryEntry{
		info: ProviderInfo{
			ID:        id,
			Rate:      rate,
			Strengths: append([]string(nil), strengths...),
			Health:    HealthOnline,
		},
		client: client,
	}
	return nil
}

// Client returns the generation client for a provider.
func (r *Registry) Client(id llm.Provider) (llm.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", llm.ErrUnknownProvider, id)
	}
	return entry.client, nil
}

// Info returns a copy of one provider's metadata.
func (r *Registry) Info(id llm.Provider) (ProviderInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return ProviderInfo{}, false
	}
	return copyInfo(entry.info), true
}

// List returns all providers ordered by id.
func (r *Registry) List() []ProviderInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ProviderInfo, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, copyInfo(entry.info))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len reports the number of registered providers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// ByCostAscending returns provider ids from cheapest to most expensive,
// ties broken by id for determinism.
func (r *Registry) ByCostAscending() []llm.Provider {
	infos := r.List()
	sort.SliceStable(infos, func(i, j int) bool { return infos[i].Rate < infos[j].Rate })
	out := make([]llm.Provider, len(infos))
	for i, info := range infos {
		out[i] = info.ID
	}
	return out
}

// Cheapest returns the provider with the lowest per-token rate.
func (r *Registry) Cheapest() (llm.Provider, error) {
	order := r.ByCostAscending()
	if len(order) == 0 {
		return "", ErrNoProvidersRegistered
	}
	return order[0], nil
}

// MostExpensive returns the provider with the highest per-token rate.
func (r *Registry) MostExpensive() (llm.Provider, error) {
	order := r.ByCostAscending()
	if len(order) == 0 {
		return "", ErrNoProvidersRegistered
	}
	return order[len(order)-1], nil
}

// SetHealth records a provider's health status and observed latency.
func (r *Registry) SetHealth(id llm.Provider, health Health, latency time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return
	}
	entry.info.Health = health
	entry.info.Latency = latency
	entry.info.LastChecked = time.Now().UTC()
}

// CheckHealth probes the provider with a minimal generation request and
// records the outcome: errors mark it offline, slow responses degraded.
func (r *Registry) CheckHealth(ctx context.Context, id llm.Provider) (ProviderInfo, error) {
	client, err := r.Client(id)
	if err != nil {
		return ProviderInfo{}, err
	}

	start := time.Now()
	_, probeErr := client.Generate(ctx, llm.GenerateRequest{Prompt: "ping", MaxTokens: 1})
	latency := time.Since(start)

	health := HealthOnline
	switch {
	case probeErr != nil:
		health = HealthOffline
	case latency > 5*time.Second:
		health = HealthDegraded
	}
	r.SetHealth(id, health, latency)

	info, _ := r.Info(id)
	return info, nil
}

func copyInfo(info ProviderInfo) ProviderInfo {
	out := info
	out.Strengths = append([]string(nil), info.Strengths...)
	return out
}

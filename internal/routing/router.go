package routing

import (
	"fmt"

	"creator-backend/internal/llm"
	"creator-backend/internal/shared/telemetry"
)

// DefaultCheapThresholdUSD is the cost ceiling below which the router
// always picks the cheapest provider.
const DefaultCheapThresholdUSD = 0.01

// Affinity maps task types to the provider that should serve them.
type Affinity map[TaskType]llm.Provider

// DefaultAffinity sends reasoning-heavy work to the capable provider and
// volume content work to the cheapest registered one.
func DefaultAffinity(reg *Registry) Affinity {
	cheapest, err := reg.Cheapest()
	if err != nil {
		return Affinity{}
	}
	affinity := Affinity{
		TaskCreative:    cheapest,
		TaskSocial:      cheapest,
		TaskVideoScript: cheapest,
		TaskArticle:     cheapest,
		TaskAdCopy:      cheapest,
	}
	if _, ok := reg.Info(llm.ProviderOpenAI); ok {
		affinity[TaskAnalysis] = llm.ProviderOpenAI
		affinity[TaskComplex] = llm.ProviderOpenAI
		affinity[TaskCoding] = llm.ProviderOpenAI
	}
	return affinity
}

// Router selects a provider for each task. It performs no I/O; the caller
// executes the decision and reports the outcome to the ledger.
type Router struct {
	registry       *Registry
	affinity       Affinity
	cheapThreshold float64
}

// NewRouter constructs a router. A nil affinity falls back to
// DefaultAffinity; a non-positive threshold to DefaultCheapThresholdUSD.
func NewRouter(reg *Registry, affinity Affinity, cheapThresholdUSD float64) *Router {
	if affinity == nil {
		affinity = DefaultAffinity(reg)
	}
	if cheapThresholdUSD <= 0 {
		cheapThresholdUSD = DefaultCheapThresholdUSD
	}
	return &Router{
		registry:       reg,
		affinity:       affinity,
		cheapThreshold: cheapThresholdUSD,
	}
}

// SelectProvider resolves a task to a provider. First match wins:
//  1. explicit override, honored verbatim (a degraded provider only logs
//     a warning);
//  2. a cost ceiling under the cheap threshold forces the cheapest;
//  3. the task-type affinity table;
//  4. the cheapest provider (ambiguous tasks never default to the most
//     expensive option).
func (r *Router) SelectProvider(task Task) (llm.Provider, error) {
	if r.registry.Len() == 0 {
		return "", ErrNoProvidersRegistered
	}

	if task.Override != "" {
		info, ok := r.registry.Info(task.Override)
		if !ok {
			return "", fmt.Errorf("%w: override %q", llm.ErrUnknownProvider, task.Override)
		}
		if info.Health != HealthOnline {
			telemetry.Warn("routing.override_unhealthy", map[string]any{
				"provider": string(info.ID),
				"health":   string(info.Health),
			})
		}
		return info.ID, nil
	}

	if task.MaxCostUSD > 0 && task.MaxCostUSD < r.cheapThreshold {
		return r.registry.Cheapest()
	}

	if provider, ok := r.affinity[task.Type]; ok {
		if _, registered := r.registry.Info(provider); registered {
			return provider, nil
		}
	}

	return r.registry.Cheapest()
}

// FailoverCandidate returns the next-cheapest registered provider after
// the failed one, for the optimizer's single failover hop.
func (r *Router) FailoverCandidate(failed llm.Provider) (llm.Provider, bool) {
	for _, id := range r.registry.ByCostAscending() {
		if id != failed {
			return id, true
		}
	}
	return "", false
}

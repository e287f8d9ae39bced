// Package pricing estimates the monetary cost of provider calls. Rates are
// USD per token; token counts use the ~4 characters per token rule of thumb.
package pricing

import (
	"fmt"
	"sort"

	"creator-backend/internal/llm"
)

// DefaultRates returns the built-in per-token USD rates. These are tunable
// configuration, not measured truth; override them via the tunables file.
func DefaultRates() map[llm.Provider]float64 {
	return map[llm.Provider]float64{
		llm.ProviderOpenAI: 0.000030,
		llm.ProviderGemini: 0.00000125,
		llm.ProviderMock:   0.00000025,
	}
}

// Model holds the per-provider rate table.
type Model struct {
	rates map[llm.Provider]float64
}

// New constructs a cost model from a rate table. A nil table falls back to
// DefaultRates.
func New(rates map[llm.Provider]float64) *Model {
	if rates == nil {
		rates = DefaultRates()
	}
	copied := make(map[llm.Provider]float64, len(rates))
	for p, r := range rates {
		copied[p] = r
	}
	return &Model{rates: copied}
}

// EstimateTokens approximates the token count of a text string.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + 3) / 4
}

// Rate returns the per-token rate for a provider.
func (m *Model) Rate(p llm.Provider) (float64, error) {
	rate, ok := m.rates[p]
	if !ok {
		return 0, fmt.Errorf("%w: %q", llm.ErrUnknownProvider, p)
	}
	return rate, nil
}

// EstimateCost projects the cost of one call: estimated prompt tokens plus
// the full output budget, at the provider's rate. Pure, no I/O.
func (m *Model) EstimateCost(p llm.Provider, prompt string, maxOutputTokens int) (float64, error) {
	rate, err := m.Rate(p)
	if err != nil {
		return 0, err
	}
	if maxOutputTokens < 0 {
		maxOutputTokens = 0
	}
	tokens := EstimateTokens(prompt) + maxOutputTokens
	return float64(tokens) * rate, nil
}

// ActualCost prices a completed call from reported token usage.
func (m *Model) ActualCost(p llm.Provider, inputTokens, outputTokens int) (float64, error) {
	rate, err := m.Rate(p)
	if err != nil {
		return 0, err
	}
	if inputTokens < 0 {
		inputTokens = 0
	}
	if outputTokens < 0 {
		outputTokens = 0
	}
	return float64(inputTokens+outputTokens) * rate, nil
}

// MaxRate returns the most expensive registered rate. Zero when the table
// is empty.
func (m *Model) MaxRate() float64 {
	max := 0.0
	for _, r := range m.rates {
		if r > max {
			max = r
		}
	}
	return max
}

// Providers lists the registered provider ids in stable order.
func (m *Model) Providers() []llm.Provider {
	out := make([]llm.Provider, 0, len(m.rates))
	for p := range m.rates {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

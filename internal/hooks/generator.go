package hooks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"creator-backend/internal/ledger"
	"creator-backend/internal/llm"
	"creator-backend/internal/pricing"
	"creator-backend/internal/routing"
	"creator-backend/internal/scoring"
	"creator-backend/internal/shared/metrics"
)

const defaultCandidateCount = 10

// Generator produces ranked hook candidates for a topic.
type Generator struct {
	Router   *routing.Router
	Registry *routing.Registry
	Scorer   *scoring.Scorer
	Ledger   *ledger.Service
	Pricing  *pricing.Model
}

// NewGenerator constructs a Generator.
func NewGenerator(router *routing.Router, registry *routing.Registry, scorer *scoring.Scorer, ledgerSvc *ledger.Service, model *pricing.Model) *Generator {
	return &Generator{
		Router:   router,
		Registry: registry,
		Scorer:   scorer,
		Ledger:   ledgerSvc,
		Pricing:  model,
	}
}

// Generate asks a provider for raw candidates, then ranks them. The
// provider call is the only I/O; everything after it is deterministic.
func (g *Generator) Generate(ctx context.Context, topic string, platform scoring.Platform, count int) ([]Hook, error) {
	if count <= 0 {
		count = 5
	}
	task := routing.Task{
		Prompt:      hookPrompt(topic, platform),
		Type:        routing.TaskSocial,
		MaxTokens:   400,
		Temperature: 0.9,
	}

	provider, err := g.Router.SelectProvider(task)
	if err != nil {
		return nil, err
	}
	client, err := g.Registry.Client(provider)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	gen, err := client.Generate(ctx, llm.GenerateRequest{
		Prompt:      task.Prompt,
		MaxTokens:   task.MaxTokens,
		Temperature: task.Temperature,
	})
	metrics.ObserveProviderCallMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return nil, err
	}
	// Work whose result is discarded is never charged.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	cost := callCost(g.Pricing, provider, task, gen)
	if recErr := g.Ledger.RecordUsage(ctx, provider, cost); recErr != nil {
		return nil, recErr
	}

	candidates := ParseCandidates(gen.Text)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w (provider %s)", ErrNoCandidates, provider)
	}
	return Rank(candidates, g.Scorer, count), nil
}

func hookPrompt(topic string, platform scoring.Platform) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Write %d distinct opening hooks for %s content about: %s\n", defaultCandidateCount, platform, topic)
	sb.WriteString("Mix rhetorical styles: questions, bold statements, statistics, personal stories, and contrarian takes.\n")
	sb.WriteString("Return one hook per line with no numbering or commentary.")
	return sb.String()
}

// callCost prefers actual reported token usage, falling back to the
// estimate when the provider did not report usage.
func callCost(model *pricing.Model, provider llm.Provider, task routing.Task, gen llm.Generation) float64 {
	if gen.InputTokens > 0 || gen.OutputTokens > 0 {
		if cost, err := model.ActualCost(provider, gen.InputTokens, gen.OutputTokens); err == nil {
			return cost
		}
	}
	cost, err := model.EstimateCost(provider, task.Prompt, task.MaxTokens)
	if err != nil {
		return 0
	}
	return cost
}

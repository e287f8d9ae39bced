// Package optimizer orchestrates one optimization request: route a
// provider, generate a rewrite, re-score the result, and account for the
// spend. It is the only component allowed to turn a provider failure into
// a failover attempt.
package optimizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"creator-backend/internal/brand"
	"creator-backend/internal/ledger"
	"creator-backend/internal/llm"
	"creator-backend/internal/pricing"
	"creator-backend/internal/routing"
	"creator-backend/internal/scoring"
	"creator-backend/internal/shared/metrics"
	"creator-backend/internal/shared/telemetry"
)

// State tracks an optimization request through its lifecycle.
type State string

const (
	StatePending    State = "pending"
	StateRouting    State = "routing"
	StateGenerating State = "generating"
	StateScoring    State = "scoring"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

// Request describes one optimization.
type Request struct {
	Text       string
	Platform   scoring.Platform
	Task       routing.Task
	Guidelines *brand.Guidelines
	Rewrite    bool
}

// Result is the outcome of a completed optimization.
type Result struct {
	ID             string                 `json:"id"`
	State          State                  `json:"state"`
	Provider       llm.Provider           `json:"provider,omitempty"`
	OptimizedText  string                 `json:"optimizedText,omitempty"`
	Score          scoring.ScoreBreakdown `json:"score"`
	BrandCheck     *brand.CheckResult     `json:"brandCheck,omitempty"`
	ChangesApplied []string               `json:"changesApplied"`
}

// DefaultCallTimeout bounds each provider call when the request carries no
// tighter deadline.
const DefaultCallTimeout = 60 * time.Second

// Optimizer wires the routing, generation, scoring, and accounting layers.
type Optimizer struct {
	Router      *routing.Router
	Registry    *routing.Registry
	Scorer      *scoring.Scorer
	Checker     *brand.Checker
	Ledger      *ledger.Service
	Pricing     *pricing.Model
	CallTimeout time.Duration
}

// NewOptimizer constructs an Optimizer with the default call timeout.
func NewOptimizer(router *routing.Router, registry *routing.Registry, scorer *scoring.Scorer, checker *brand.Checker, ledgerSvc *ledger.Service, model *pricing.Model) *Optimizer {
	return &Optimizer{
		Router:      router,
		Registry:    registry,
		Scorer:      scorer,
		Checker:     checker,
		Ledger:      ledgerSvc,
		Pricing:     model,
		CallTimeout: DefaultCallTimeout,
	}
}

// Optimize runs the full Pending→Routing→Generating→Scoring state machine.
// On a provider failure it retries exactly once against the next-cheapest
// registered provider; a second failure surfaces unmodified.
func (o *Optimizer) Optimize(ctx context.Context, req Request) (Result, error) {
	result := Result{ID: uuid.NewString(), State: StatePending}
	metrics.IncOptimizationStarted()

	result.State = StateRouting
	task := req.Task
	if task.Prompt == "" {
		task.Prompt = rewritePrompt(req.Text, req.Platform)
	}
	if task.MaxTokens == 0 {
		task.MaxTokens = 800
	}
	if task.Temperature == 0 {
		task.Temperature = 0.7
	}
	primary, err := o.Router.SelectProvider(task)
	if err != nil {
		result.State = StateFailed
		metrics.IncOptimizationFailed()
		return result, err
	}

	result.State = StateGenerating
	gen, used, err := o.generateWithFailover(ctx, primary, task, result.ID)
	if err != nil {
		result.State = StateFailed
		metrics.IncOptimizationFailed()
		return result, err
	}
	result.Provider = used

	result.State = StateScoring
	before := o.Scorer.Analyze(req.Text, req.Platform)
	after := o.Scorer.Analyze(gen.Text, req.Platform)
	result.OptimizedText = gen.Text
	result.Score = after
	if req.Guidelines != nil {
		check := o.Checker.CheckAlignment(gen.Text, *req.Guidelines)
		if req.Rewrite {
			check.Rewritten = o.Checker.Rewrite(gen.Text, *req.Guidelines)
		}
		result.BrandCheck = &check
	}
	result.ChangesApplied = describeChanges(used, before, after)

	result.State = StateDone
	metrics.IncOptimizationCompleted()
	telemetry.Info("optimize.done", map[string]any{
		"optimization_id": result.ID,
		"provider":        string(used),
		"overall_before":  before.Overall,
		"overall_after":   after.Overall,
	})
	return result, nil
}

// generateWithFailover executes the provider call, hopping once to the
// next-cheapest provider on failure. Usage is recorded exactly once per
// successful call, and never for a call whose context was cancelled.
func (o *Optimizer) generateWithFailover(ctx context.Context, primary llm.Provider, task routing.Task, optimizationID string) (llm.Generation, llm.Provider, error) {
	gen, err := o.callProvider(ctx, primary, task)
	if err == nil {
		return gen, primary, nil
	}
	if ctx.Err() != nil || !errors.Is(err, llm.ErrCallFailed) {
		return llm.Generation{}, "", err
	}

	fallback, ok := o.Router.FailoverCandidate(primary)
	if !ok {
		return llm.Generation{}, "", err
	}
	metrics.IncProviderFailover()
	telemetry.Warn("optimize.failover", map[string]any{
		"optimization_id": optimizationID,
		"from":            string(primary),
		"to":              string(fallback),
		"error":           err.Error(),
	})

	gen, ferr := o.callProvider(ctx, fallback, task)
	if ferr != nil {
		return llm.Generation{}, "", ferr
	}
	return gen, fallback, nil
}

func (o *Optimizer) callProvider(ctx context.Context, provider llm.Provider, task routing.Task) (llm.Generation, error) {
	client, err := o.Registry.Client(provider)
	if err != nil {
		return llm.Generation{}, err
	}

	timeout := o.CallTimeout
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	gen, err := client.Generate(callCtx, llm.GenerateRequest{
		Prompt:      task.Prompt,
		MaxTokens:   task.MaxTokens,
		Temperature: task.Temperature,
	})
	metrics.ObserveProviderCallMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
			return llm.Generation{}, &llm.CallError{Provider: provider, Timeout: true, Message: err.Error()}
		}
		return llm.Generation{}, err
	}

	// Work whose result is discarded is never charged.
	if ctx.Err() != nil {
		return llm.Generation{}, ctx.Err()
	}
	cost := o.callCost(provider, task, gen)
	if recErr := o.Ledger.RecordUsage(ctx, provider, cost); recErr != nil {
		return llm.Generation{}, recErr
	}
	return gen, nil
}

func (o *Optimizer) callCost(provider llm.Provider, task routing.Task, gen llm.Generation) float64 {
	if gen.InputTokens > 0 || gen.OutputTokens > 0 {
		if cost, err := o.Pricing.ActualCost(provider, gen.InputTokens, gen.OutputTokens); err == nil {
			return cost
		}
	}
	cost, err := o.Pricing.EstimateCost(provider, task.Prompt, task.MaxTokens)
	if err != nil {
		return 0
	}
	return cost
}

func rewritePrompt(text string, platform scoring.Platform) string {
	return fmt.Sprintf(
		"Rewrite the following %s script to maximize audience retention. "+
			"Strengthen the opening hook, tighten the pacing, and end with a clear call to action. "+
			"Return only the rewritten script.\n\n%s",
		platform, text)
}

func describeChanges(provider llm.Provider, before, after scoring.ScoreBreakdown) []string {
	changes := []string{
		fmt.Sprintf("text rewritten by %s", provider),
		fmt.Sprintf("overall score %d -> %d", before.Overall, after.Overall),
	}
	if after.LengthFit.Words != before.LengthFit.Words {
		changes = append(changes, fmt.Sprintf("word count %d -> %d", before.LengthFit.Words, after.LengthFit.Words))
	}
	if after.HookStrength != before.HookStrength {
		changes = append(changes, fmt.Sprintf("hook strength %d -> %d", before.HookStrength, after.HookStrength))
	}
	if after.CTAStrength != before.CTAStrength {
		changes = append(changes, fmt.Sprintf("call-to-action strength %d -> %d", before.CTAStrength, after.CTAStrength))
	}
	return changes
}

// Package llm defines the provider boundary for content generation.
// The engine only ever talks to upstream APIs through the Client
// interface; everything above it works with plain data.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Provider identifies a registered content-generation backend.
type Provider string

const (
	// ProviderOpenAI is the chat-completions style API.
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the generative-language style API.
	ProviderGemini Provider = "gemini"
	// ProviderMock is a deterministic in-process provider for development
	// and tests. It is only registered when explicitly enabled, never as
	// an implicit fallback for missing credentials.
	ProviderMock Provider = "mock"
)

// ErrUnknownProvider indicates a provider id that is not registered.
var ErrUnknownProvider = errors.New("unknown provider")

// ParseProvider validates a raw provider id.
func ParseProvider(raw string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(raw))) {
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderGemini:
		return ProviderGemini, nil
	case ProviderMock:
		return ProviderMock, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, raw)
	}
}

// GenerateRequest carries everything a provider needs for one call.
type GenerateRequest struct {
	Prompt      string
	System      string
	MaxTokens   int
	Temperature float64
}

// Generation is a provider response in the unified schema. Token counts
// are zero when the upstream API did not report usage.
type Generation struct {
	Text         string
	Model        string
	InputTokens  int
	OutputTokens int
}

// Client abstracts one upstream generation API.
type Client interface {
	Provider() Provider
	Generate(ctx context.Context, req GenerateRequest) (Generation, error)
}

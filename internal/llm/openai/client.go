// Package openai implements the llm.Client boundary over the OpenAI
// chat-completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"creator-backend/internal/llm"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// Client calls the OpenAI Chat Completions endpoint.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs an OpenAI client. The HTTP timeout defaults to 60s
// and can be overridden with OPENAI_TIMEOUT_SECONDS.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("OPENAI_MODEL is required")
	}
	timeout := 60 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *Client) Provider() llm.Provider {
	return llm.ProviderOpenAI
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Generate performs one chat-completion call.
func (c *Client) Generate(ctx context.Context, req llm.GenerateRequest) (llm.Generation, error) {
	messages := make([]chatMessage, 0, 2)
	if strings.TrimSpace(req.System) != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	reqBody := chatRequest{
		Model:    c.model,
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		reqBody.MaxTokens = &req.MaxTokens
	}
	if req.Temperature > 0 {
		reqBody.Temperature = &req.Temperature
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return llm.Generation{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return llm.Generation{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return llm.Generation{}, &llm.CallError{Provider: llm.ProviderOpenAI, Timeout: true, Message: err.Error()}
		}
		if errors.Is(err, context.Canceled) {
			return llm.Generation{}, err
		}
		return llm.Generation{}, &llm.CallError{Provider: llm.ProviderOpenAI, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return llm.Generation{}, &llm.CallError{Provider: llm.ProviderOpenAI, Message: err.Error()}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return llm.Generation{}, &llm.CallError{
			Provider: llm.ProviderOpenAI,
			Status:   resp.StatusCode,
			Message:  strings.TrimSpace(string(body)),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return llm.Generation{}, &llm.CallError{Provider: llm.ProviderOpenAI, Message: fmt.Sprintf("response parse: %v", err)}
	}
	if parsed.Error != nil {
		return llm.Generation{}, &llm.CallError{
			Provider: llm.ProviderOpenAI,
			Message:  fmt.Sprintf("%s (%s)", parsed.Error.Message, parsed.Error.Type),
		}
	}
	if len(parsed.Choices) == 0 {
		return llm.Generation{}, &llm.CallError{Provider: llm.ProviderOpenAI, Message: "response missing choices"}
	}
	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return llm.Generation{}, &llm.CallError{Provider: llm.ProviderOpenAI, Message: "response empty content"}
	}

	gen := llm.Generation{Text: content, Model: parsed.Model}
	if parsed.Usage != nil {
		gen.InputTokens = parsed.Usage.PromptTokens
		gen.OutputTokens = parsed.Usage.CompletionTokens
	}
	return gen, nil
}

func (c *Client) endpoint() string {
	if base := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); base != "" {
		return strings.TrimRight(base, "/") + "/chat/completions"
	}
	return apiURL
}

var _ llm.Client = (*Client)(nil)

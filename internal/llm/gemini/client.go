// Package gemini implements the llm.Client boundary over the Google
// generative-language API.
package gemini

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

const baseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client calls a Gemini generateContent endpoint.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs a Gemini client. The HTTP timeout defaults to 60s
// and can be overridden with GEMINI_TIMEOUT_SECONDS.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("GEMINI_MODEL is required")
	}
	timeout := 60 * time.Second
	if raw := strings.TrimSpace(os.Getenv("GEMINI_TIMEOUT_SECONDS")); raw != "" {
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
	return llm.ProviderGemini
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	UsageMetadata *struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata,omitempty"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Generate performs one generateContent call.
func (c *Client) Generate(ctx context.Context, req llm.GenerateRequest) (llm.Generation, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: req.Prompt}}}},
	}
	if strings.TrimSpace(req.System) != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: req.System}}}
	}
	if req.MaxTokens > 0 || req.Temperature > 0 {
		cfg := &generationConfig{MaxOutputTokens: req.MaxTokens}
		if req.Temperature > 0 {
			temp := req.Temperature
			cfg.Temperature = &temp
		}
		reqBody.GenerationConfig = cfg
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return llm.Generation{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return llm.Generation{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return llm.Generation{}, &llm.CallError{Provider: llm.ProviderGemini, Timeout: true, Message: err.Error()}
		}
		if errors.Is(err, context.Canceled) {
			return llm.Generation{}, err
		}
		return llm.Generation{}, &llm.CallError{Provider: llm.ProviderGemini, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return llm.Generation{}, &llm.CallError{Provider: llm.ProviderGemini, Message: err.Error()}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return llm.Generation{}, &llm.CallError{
			Provider: llm.ProviderGemini,
			Status:   resp.StatusCode,
			Message:  strings.TrimSpace(string(body)),
		}
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return llm.Generation{}, &llm.CallError{Provider: llm.ProviderGemini, Message: fmt.Sprintf("response parse: %v", err)}
	}
	if parsed.Error != nil {
		return llm.Generation{}, &llm.CallError{
			Provider: llm.ProviderGemini,
			Status:   parsed.Error.Code,
			Message:  fmt.Sprintf("%s (%s)", parsed.Error.Message, parsed.Error.Status),
		}
	}
	if len(parsed.Candidates) == 0 {
		return llm.Generation{}, &llm.CallError{Provider: llm.ProviderGemini, Message: "response missing candidates"}
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return llm.Generation{}, &llm.CallError{Provider: llm.ProviderGemini, Message: "response empty content"}
	}

	gen := llm.Generation{Text: text, Model: c.model}
	if parsed.UsageMetadata != nil {
		gen.InputTokens = parsed.UsageMetadata.PromptTokenCount
		gen.OutputTokens = parsed.UsageMetadata.CandidatesTokenCount
	}
	return gen, nil
}

func (c *Client) endpoint() string {
	base := baseURL
	if override := strings.TrimSpace(os.Getenv("GEMINI_BASE_URL")); override != "" {
		base = strings.TrimRight(override, "/")
	}
	return fmt.Sprintf("%s/%s:generateContent", base, c.model)
}

var _ llm.Client = (*Client)(nil)

package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"creator-backend/internal/shared/config"
	"creator-backend/internal/shared/server"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		Port:               "0",
		CORSAllowOrigin:    []string{"http://localhost:5173"},
		Env:                "dev",
		EnableMockProvider: true,
	}
	return server.NewRouter(cfg)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/health", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		OK        bool `json:"ok"`
		Providers int  `json:"providers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.OK || body.Providers != 1 {
		t.Fatalf("unexpected health body: %+v", body)
	}
}

func TestScoreEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/score",
		`{"text": "What if I told you this works? Subscribe now.", "platform": "tiktok"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		HookStrength int `json:"hookStrength"`
		Overall      int `json:"overall"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.HookStrength < 65 {
		t.Fatalf("hookStrength = %d, want at least 65", body.HookStrength)
	}
	if body.Overall <= 0 || body.Overall > 100 {
		t.Fatalf("overall out of range: %d", body.Overall)
	}
}

func TestScoreEndpointRejectsEmptyText(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/score", `{"text": "  "}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestHooksEndpointUsesMockProvider(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/hooks",
		`{"topic": "growing on youtube", "platform": "youtube", "count": 3}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Hooks []struct {
			Text       string `json:"text"`
			Type       string `json:"type"`
			ViralScore int    `json:"viralScore"`
		} `json:"hooks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Hooks) != 3 {
		t.Fatalf("expected 3 hooks, got %d", len(body.Hooks))
	}
	for _, hook := range body.Hooks {
		if hook.Text == "" || hook.Type == "" || hook.ViralScore <= 0 {
			t.Fatalf("incomplete hook: %+v", hook)
		}
	}
}

func TestUsageReflectsGenerationCalls(t *testing.T) {
	router := newTestRouter(t)

	if resp := doJSON(t, router, http.MethodPost, "/api/v1/hooks", `{"topic": "lighting"}`); resp.Code != http.StatusOK {
		t.Fatalf("hooks call failed: %d %s", resp.Code, resp.Body.String())
	}

	resp := doJSON(t, router, http.MethodGet, "/api/v1/usage", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		TotalRequests int64   `json:"totalRequests"`
		TotalCost     float64 `json:"totalCost"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.TotalRequests != 1 {
		t.Fatalf("totalRequests = %d, want 1", body.TotalRequests)
	}
	if body.TotalCost <= 0 {
		t.Fatalf("totalCost = %f, want positive", body.TotalCost)
	}

	reset := doJSON(t, router, http.MethodPost, "/api/v1/dev/usage/reset", "")
	if reset.Code != http.StatusOK {
		t.Fatalf("reset failed: %d", reset.Code)
	}
}

func TestBrandCheckEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/brand-check",
		`{"content": "Our cheap tripods hold up.", "guidelines": {"voice": {"avoidWords": ["cheap"]}}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		VoiceScore int `json:"voiceScore"`
		Issues     []struct {
			Category string `json:"category"`
			Severity string `json:"severity"`
		} `json:"issues"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Issues) != 1 || body.Issues[0].Category != "voice" || body.Issues[0].Severity != "medium" {
		t.Fatalf("unexpected issues: %+v", body.Issues)
	}
}

func TestProvidersEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/providers", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Providers []struct {
			ID     string `json:"id"`
			Health string `json:"health"`
		} `json:"providers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Providers) != 1 || body.Providers[0].ID != "mock" {
		t.Fatalf("unexpected providers: %+v", body.Providers)
	}
	if body.Providers[0].Health != "online" {
		t.Fatalf("new provider should start online, got %s", body.Providers[0].Health)
	}
}

func TestMockDisabledLeavesRegistryEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := server.NewRouter(config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
	})

	resp := doJSON(t, router, http.MethodGet, "/api/v1/providers", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Providers []struct {
			ID string `json:"id"`
		} `json:"providers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Providers) != 0 {
		t.Fatalf("no credentials and mock disabled should register nothing, got %+v", body.Providers)
	}

	hooks := doJSON(t, router, http.MethodPost, "/api/v1/hooks", `{"topic": "lighting"}`)
	if hooks.Code != http.StatusServiceUnavailable {
		t.Fatalf("generation without providers should 503, got %d: %s", hooks.Code, hooks.Body.String())
	}
}

func TestProviderHealthCheckEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/providers/mock/health-check", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	missing := doJSON(t, router, http.MethodPost, "/api/v1/providers/openai/health-check", "")
	if missing.Code != http.StatusNotFound {
		t.Fatalf("unregistered provider should 404, got %d", missing.Code)
	}
}

func TestOptimizeEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/optimize",
		`{"text": "a flat description of a camera", "platform": "tiktok", "taskType": "video-script"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		ID             string   `json:"id"`
		State          string   `json:"state"`
		Provider       string   `json:"provider"`
		OptimizedText  string   `json:"optimizedText"`
		ChangesApplied []string `json:"changesApplied"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.State != "done" || body.Provider != "mock" {
		t.Fatalf("unexpected result: %+v", body)
	}
	if body.ID == "" || body.OptimizedText == "" || len(body.ChangesApplied) == 0 {
		t.Fatalf("incomplete result: %+v", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/metrics", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "optimization_started_total") {
		t.Fatalf("metrics output missing counters: %s", resp.Body.String())
	}
}

package optimizer

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"creator-backend/internal/brand"
	"creator-backend/internal/llm"
	"creator-backend/internal/routing"
	"creator-backend/internal/scoring"
	"creator-backend/internal/shared/server/respond"
)

// Handler exposes the optimization pipeline over HTTP.
type Handler struct {
	Optimizer *Optimizer
}

// NewHandler constructs a Handler.
func NewHandler(opt *Optimizer) *Handler {
	return &Handler{Optimizer: opt}
}

// RegisterRoutes attaches optimization routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", h.optimize)
}

type optimizeRequest struct {
	Text       string            `json:"text"`
	Platform   string            `json:"platform"`
	TaskType   string            `json:"taskType"`
	Provider   string            `json:"provider"`
	MaxCostUSD float64           `json:"maxCostUsd"`
	Guidelines *brand.Guidelines `json:"guidelines"`
	Rewrite    bool              `json:"rewrite"`
}

func (h *Handler) optimize(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		return
	}

	var override llm.Provider
	if req.Provider != "" {
		parsed, err := llm.ParseProvider(req.Provider)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown provider", nil)
			return
		}
		override = parsed
	}

	platform := scoring.ParsePlatform(req.Platform)
	result, err := h.Optimizer.Optimize(c.Request.Context(), Request{
		Text:     req.Text,
		Platform: platform,
		Task: routing.Task{
			Type:       routing.ParseTaskType(req.TaskType),
			Override:   override,
			MaxCostUSD: req.MaxCostUSD,
		},
		Guidelines: req.Guidelines,
		Rewrite:    req.Rewrite,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		case errors.Is(err, routing.ErrNoProvidersRegistered):
			respond.Error(c, http.StatusServiceUnavailable, "no_providers", "no generation providers are configured", nil)
		case errors.Is(err, llm.ErrUnknownProvider):
			respond.Error(c, http.StatusBadRequest, "unknown_provider", "requested provider is not registered", nil)
		case errors.Is(err, llm.ErrTimeout):
			respond.Error(c, http.StatusGatewayTimeout, "provider_timeout", "provider timed out", nil)
		case errors.Is(err, llm.ErrCallFailed):
			respond.Error(c, http.StatusBadGateway, "provider_error", "provider call failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "optimization failed", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, result)
}

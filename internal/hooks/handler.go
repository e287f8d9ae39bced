package hooks

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"creator-backend/internal/llm"
	"creator-backend/internal/routing"
	"creator-backend/internal/scoring"
	"creator-backend/internal/shared/server/respond"
)

// Handler exposes hook generation over HTTP.
type Handler struct {
	Generator *Generator
}

// NewHandler constructs a Handler.
func NewHandler(generator *Generator) *Handler {
	return &Handler{Generator: generator}
}

// RegisterRoutes attaches hook routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/hooks", h.generate)
}

type hooksRequest struct {
	Topic    string `json:"topic"`
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

func (h *Handler) generate(c *gin.Context) {
	var req hooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "topic is required", nil)
		return
	}

	ranked, err := h.Generator.Generate(c.Request.Context(), req.Topic, scoring.ParsePlatform(req.Platform), req.Count)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		case errors.Is(err, routing.ErrNoProvidersRegistered):
			respond.Error(c, http.StatusServiceUnavailable, "no_providers", "no generation providers are configured", nil)
		case errors.Is(err, ErrNoCandidates):
			respond.Error(c, http.StatusBadGateway, "no_candidates", "provider returned no usable candidates", nil)
		case errors.Is(err, llm.ErrTimeout):
			respond.Error(c, http.StatusGatewayTimeout, "provider_timeout", "provider timed out", nil)
		case errors.Is(err, llm.ErrCallFailed):
			respond.Error(c, http.StatusBadGateway, "provider_error", "provider call failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "hook generation failed", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"hooks": ranked})
}

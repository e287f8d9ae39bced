package routing

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"creator-backend/internal/llm"
	"creator-backend/internal/shared/server/respond"
)

// Handler exposes the provider registry over HTTP.
type Handler struct {
	Registry *Registry
}

// NewHandler constructs a Handler.
func NewHandler(reg *Registry) *Handler {
	return &Handler{Registry: reg}
}

// RegisterRoutes attaches provider routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/providers", h.listProviders)
	rg.POST("/providers/:id/health-check", h.checkHealth)
}

type providerView struct {
	ID          string   `json:"id"`
	Rate        float64  `json:"rate"`
	Strengths   []string `json:"strengths"`
	Health      string   `json:"health"`
	LatencyMs   int64    `json:"latencyMs"`
	LastChecked string   `json:"lastChecked,omitempty"`
}

func (h *Handler) listProviders(c *gin.Context) {
	infos := h.Registry.List()
	out := make([]providerView, 0, len(infos))
	for _, info := range infos {
		out = append(out, toView(info))
	}
	respond.JSON(c, http.StatusOK, gin.H{"providers": out})
}

func (h *Handler) checkHealth(c *gin.Context) {
	provider, err := llm.ParseProvider(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown provider id", nil)
		return
	}

	info, err := h.Registry.CheckHealth(c.Request.Context(), provider)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_registered", "provider is not registered", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toView(info))
}

func toView(info ProviderInfo) providerView {
	view := providerView{
		ID:        string(info.ID),
		Rate:      info.Rate,
		Strengths: info.Strengths,
		Health:    string(info.Health),
		LatencyMs: info.Latency.Milliseconds(),
	}
	if !info.LastChecked.IsZero() {
		view.LastChecked = info.LastChecked.UTC().Format(time.RFC3339)
	}
	return view
}

package ledger

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"creator-backend/internal/shared/server/respond"
)

// Handler exposes usage endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches usage routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/usage", h.getUsage)
}

// RegisterDevRoutes attaches dev-only usage routes.
func (h *Handler) RegisterDevRoutes(rg *gin.RouterGroup) {
	rg.POST("/usage/reset", h.resetUsage)
}

func (h *Handler) getUsage(c *gin.Context) {
	ctx := c.Request.Context()
	snap, err := h.Svc.Snapshot(ctx)
	if err != nil {
		respondUsageError(c, err)
		return
	}
	savings, err := h.Svc.EstimateSavings(ctx)
	if err != nil {
		respondUsageError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"providers":     snap.Providers,
		"totalRequests": snap.TotalRequests,
		"totalCost":     snap.TotalCost,
		"savings":       savings,
	})
}

func (h *Handler) resetUsage(c *gin.Context) {
	if err := h.Svc.Reset(c.Request.Context()); err != nil {
		respondUsageError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"reset": true})
}

func respondUsageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read usage", nil)
	}
}

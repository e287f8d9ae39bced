package scoring

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"creator-backend/internal/shared/server/respond"
)

// Handler exposes the script scorer over HTTP.
type Handler struct {
	Scorer *Scorer
}

// NewHandler constructs a Handler.
func NewHandler(scorer *Scorer) *Handler {
	return &Handler{Scorer: scorer}
}

// RegisterRoutes attaches scoring routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/score", h.score)
}

type scoreRequest struct {
	Text     string `json:"text"`
	Platform string `json:"platform"`
}

func (h *Handler) score(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		return
	}

	breakdown := h.Scorer.Analyze(req.Text, ParsePlatform(req.Platform))
	respond.JSON(c, http.StatusOK, breakdown)
}

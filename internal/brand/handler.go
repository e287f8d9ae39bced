package brand

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"creator-backend/internal/shared/server/respond"
)

// Handler exposes brand alignment checks over HTTP.
type Handler struct {
	Checker *Checker
}

// NewHandler constructs a Handler.
func NewHandler(checker *Checker) *Handler {
	return &Handler{Checker: checker}
}

// RegisterRoutes attaches brand routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/brand-check", h.check)
}

type checkRequest struct {
	Content    string     `json:"content"`
	Guidelines Guidelines `json:"guidelines"`
	Rewrite    bool       `json:"rewrite"`
}

func (h *Handler) check(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "content is required", nil)
		return
	}

	req.Guidelines.Voice.Tone = ParseTone(string(req.Guidelines.Voice.Tone))
	result := h.Checker.CheckAlignment(req.Content, req.Guidelines)
	if req.Rewrite {
		result.Rewritten = h.Checker.Rewrite(req.Content, req.Guidelines)
	}
	respond.JSON(c, http.StatusOK, result)
}

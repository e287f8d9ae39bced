package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON serializes payload as the response body with the given status.
// Handlers go through this instead of c.JSON directly so the success and
// error shapes stay in one package.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK is JSON with http.StatusOK.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

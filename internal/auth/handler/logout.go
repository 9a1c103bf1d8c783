package handler

import (
	"net/http"

	"github.com/TahaRamkda/resourceBucketOr/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logout tears down the session and returns to the home page. A store
// fault surfaces as a 500 rather than being silently dropped; logging
// out while anonymous just clears the cookie.
func (h *Handler) Logout(c *gin.Context) {
	err := h.sessions.Destroy(c.Request.Context(), c.Writer, c.Request)
	if err != nil {
		logger.Error("logout failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Error during logout")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

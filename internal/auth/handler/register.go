package handler

import (
	"net/http"

	"github.com/TahaRamkda/resourceBucketOr/internal/auth"
	"github.com/TahaRamkda/resourceBucketOr/internal/logger"

	"github.com/gin-gonic/gin"
)

// Register creates an account and logs it in immediately; the two are
// one step. An already-used email redirects to login with no error
// surfaced.
func (h *Handler) Register(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")

	outcome, err := h.auth.Register(c.Request.Context(), email, password)
	if err != nil {
		logger.Error("registration failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Error registering user")
		return
	}

	switch outcome.Status {
	case auth.StatusSuccess:
		h.grantSession(c, outcome.Principal)

	case auth.StatusAlreadyExists:
		c.Redirect(http.StatusFound, "/login")

	default:
		c.String(http.StatusInternalServerError, "Error registering user")
	}
}

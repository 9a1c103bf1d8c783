package handler

import (
	"net/http"

	"github.com/TahaRamkda/resourceBucketOr/internal/auth"
	"github.com/TahaRamkda/resourceBucketOr/internal/logger"

	"github.com/gin-gonic/gin"
)

// Login handles the password form. The email field is named "username"
// for compatibility with the existing frontend.
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")

	outcome, err := h.auth.LoginWithPassword(c.Request.Context(), email, password)
	if err != nil {
		logger.Error("password login failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Error during login")
		return
	}

	switch outcome.Status {
	case auth.StatusSuccess:
		h.grantSession(c, outcome.Principal)

	case auth.StatusBadPassword:
		// Known user, wrong password: re-render with the alternate
		// method hint. Unknown users get no hint.
		c.HTML(http.StatusOK, "login.html", gin.H{
			"RetryHint": true,
			"Email":     email,
		})

	case auth.StatusNoSuchUser:
		c.Redirect(http.StatusFound, "/login")

	default:
		c.String(http.StatusInternalServerError, "Error during login")
	}
}

// grantSession establishes a session for a verified principal and
// redirects into the authenticated area.
func (h *Handler) grantSession(c *gin.Context, principal *auth.Principal) {
	if principal == nil {
		c.String(http.StatusInternalServerError, "Error during login")
		return
	}

	err := h.sessions.Establish(c.Request.Context(), c.Writer, principal.ID, principal.Email)
	if err != nil {
		logger.Error("session establish failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Error during login")
		return
	}

	c.Redirect(http.StatusFound, "/ResourceBucket")
}

package handler

import (
	"net/http"

	"github.com/TahaRamkda/resourceBucketOr/internal/auth"
	"github.com/TahaRamkda/resourceBucketOr/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	emailHeader = "X-User-Email"
	codeHeader  = "X-OTP-Code"
)

// VerifyOTP checks a one-time code submitted via request headers (the
// frontend sends them from a fetch call, not a form body). A correct
// code consumes the record and grants a session.
func (h *Handler) VerifyOTP(c *gin.Context) {
	email := c.GetHeader(emailHeader)
	code := c.GetHeader(codeHeader)

	outcome, err := h.auth.LoginWithOTP(c.Request.Context(), email, code)
	if err != nil {
		logger.Error("otp verification failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"result": "error"})
		return
	}

	switch outcome.Status {
	case auth.StatusSuccess:
		err := h.sessions.Establish(
			c.Request.Context(),
			c.Writer,
			outcome.Principal.ID,
			outcome.Principal.Email,
		)
		if err != nil {
			logger.Error("session establish failed", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{"result": "error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": "success"})

	case auth.StatusExpiredCode:
		// Expiry is logged but the client sees the same generic error
		// as a mismatch; no oracle for whether a code ever existed.
		logger.Warn("otp expired or absent", map[string]any{
			"email": email,
		})
		c.JSON(http.StatusBadRequest, gin.H{"result": "error"})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"result": "error"})
	}
}

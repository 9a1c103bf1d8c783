package handler

import (
	"net/http"

	"github.com/TahaRamkda/resourceBucketOr/internal/logger"
	"github.com/TahaRamkda/resourceBucketOr/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", nil)
}

func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Email": "",
	})
}

func (h *Handler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

func (h *Handler) ResourceBucket(c *gin.Context) {
	principal, _ := middleware.PrincipalFromContext(c.Request.Context())
	logger.Info("resource bucket viewed", map[string]any{
		"email": principal.Email,
	})
	c.HTML(http.StatusOK, "resource_bucket.html", gin.H{
		"Email": principal.Email,
	})
}

func (h *Handler) Assignments(c *gin.Context) {
	items, err := h.content.ListAssignments(c.Request.Context())
	if err != nil {
		logger.Error("assignment listing failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Error retrieving content")
		return
	}

	c.HTML(http.StatusOK, "content.html", gin.H{
		"Title":     "Assignment",
		"ListItems": items,
	})
}

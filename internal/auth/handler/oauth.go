package handler

import (
	"net/http"

	"github.com/TahaRamkda/resourceBucketOr/internal/auth"
	"github.com/TahaRamkda/resourceBucketOr/internal/logger"

	"github.com/gin-gonic/gin"
)

const googleProvider = "google"

// OAuthLogin starts the federated flow: state + PKCE cookies, then a
// redirect to the provider's consent screen.
func (h *Handler) OAuthLogin(c *gin.Context) {
	p, err := h.providers.Get(googleProvider)
	if err != nil {
		logger.Error("oauth provider missing", map[string]any{
			"error": err.Error(),
		})
		c.Redirect(http.StatusFound, "/login")
		return
	}

	state := generateState(c)
	_, codeChallenge := generatePKCE(c)

	c.Redirect(http.StatusFound, p.AuthCodeURL(state, codeChallenge))
}

// OAuthCallback finishes the federated flow. Every failure path lands
// back on /login; only a verified profile reaches the orchestrator.
func (h *Handler) OAuthCallback(c *gin.Context) {
	p, err := h.providers.Get(googleProvider)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if !validateState(c) {
		logger.Warn("oauth state mismatch", nil)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("oauth callback returned error", map[string]any{
			"error": errParam,
			"desc":  c.Query("error_description"),
		})
		c.Redirect(http.StatusFound, "/login")
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.Error("oauth callback missing code", nil)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	codeVerifier := getPKCEVerifier(c)
	if codeVerifier == "" {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	profile, err := p.ExchangeCode(c.Request.Context(), code, codeVerifier)
	if err != nil {
		logger.Error("oauth code exchange failed", map[string]any{
			"error": err.Error(),
		})
		c.Redirect(http.StatusFound, "/login")
		return
	}

	outcome, err := h.auth.LoginWithFederatedProfile(c.Request.Context(), profile)
	if err != nil {
		logger.Error("federated login failed", map[string]any{
			"error": err.Error(),
		})
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if outcome.Status != auth.StatusSuccess {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	h.grantSession(c, outcome.Principal)
}

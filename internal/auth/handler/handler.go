package handler

import (
	"context"

	"github.com/TahaRamkda/resourceBucketOr/internal/auth"
	"github.com/TahaRamkda/resourceBucketOr/internal/auth/provider"
	"github.com/TahaRamkda/resourceBucketOr/internal/content"
	"github.com/TahaRamkda/resourceBucketOr/internal/session"

	"github.com/gin-gonic/gin"
)

// AuthService is the orchestrator surface the handlers dispatch to.
// Each endpoint invokes exactly one login method.
type AuthService interface {
	LoginWithPassword(ctx context.Context, email, password string) (auth.Outcome, error)
	LoginWithFederatedProfile(ctx context.Context, profile *auth.Profile) (auth.Outcome, error)
	LoginWithOTP(ctx context.Context, email, code string) (auth.Outcome, error)
	Register(ctx context.Context, email, password string) (auth.Outcome, error)
}

// ContentLister supplies the protected assignment listing.
type ContentLister interface {
	ListAssignments(ctx context.Context) ([]content.Assignment, error)
}

type Handler struct {
	auth      AuthService
	sessions  *session.Manager
	providers *provider.Registry
	content   ContentLister
}

func NewHandler(
	authService AuthService,
	sessions *session.Manager,
	providers *provider.Registry,
	lister ContentLister,
) *Handler {
	return &Handler{
		auth:      authService,
		sessions:  sessions,
		providers: providers,
		content:   lister,
	}
}

// RegisterRoutes wires the public and protected routes. The guard is
// injected so tests can swap it out.
func (h *Handler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	r.GET("/", h.Home)
	r.GET("/login", h.LoginPage)
	r.GET("/register", h.RegisterPage)
	r.GET("/logout", h.Logout)

	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	r.POST("/verify", h.VerifyOTP)

	r.GET("/auth/google", h.OAuthLogin)
	r.GET("/auth/google/secrets", h.OAuthCallback)

	protected := r.Group("/")
	protected.Use(requireAuth)
	protected.GET("/ResourceBucket", h.ResourceBucket)
	protected.GET("/assignment", h.Assignments)
}

package app

import (
	"context"
	"net/http"

	"github.com/TahaRamkda/resourceBucketOr/internal/auth"
	"github.com/TahaRamkda/resourceBucketOr/internal/auth/handler"
	"github.com/TahaRamkda/resourceBucketOr/internal/auth/provider"
	"github.com/TahaRamkda/resourceBucketOr/internal/auth/provider/google"
	"github.com/TahaRamkda/resourceBucketOr/internal/auth/store"
	"github.com/TahaRamkda/resourceBucketOr/internal/config"
	"github.com/TahaRamkda/resourceBucketOr/internal/content"
	"github.com/TahaRamkda/resourceBucketOr/internal/middleware"
	"github.com/TahaRamkda/resourceBucketOr/internal/session"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	userStore := store.NewPostgresUserStore(infra.DB)
	otpStore := store.NewRedisOTPStore(infra.Redis.Client, cfg.OTPTTL)

	orchestrator := auth.NewOrchestrator(userStore, otpStore)

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	sessionManager := session.NewManager(sessionStore, cfg.SessionTTL, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	googleProvider, err := google.New(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	registry := provider.NewRegistry(googleProvider)

	lister := content.NewLister(infra.S3, cfg.S3Bucket, cfg.S3Prefix)

	authHandler := handler.NewHandler(
		orchestrator,
		sessionManager,
		registry,
		lister,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/public", "./public")

	authHandler.RegisterRoutes(router, middleware.RequireAuth(sessionManager))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}

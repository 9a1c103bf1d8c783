package middleware

import (
	"context"
	"net/http"

	"github.com/TahaRamkda/resourceBucketOr/internal/auth"
	"github.com/TahaRamkda/resourceBucketOr/internal/logger"
	"github.com/TahaRamkda/resourceBucketOr/internal/session"

	"github.com/gin-gonic/gin"
)

// unexported, collision-proof context key
type principalContextKeyType struct{}

var principalKey = principalContextKeyType{}

// PrincipalFromContext extracts the authenticated identity projection
// from a request context guarded by RequireAuth.
func PrincipalFromContext(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey).(auth.Principal)
	return p, ok
}

// RequireAuth gates protected routes. An anonymous request is
// short-circuited to /login; an authenticated one proceeds with the
// identity projection attached to the request context.
func RequireAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.Current(c.Request.Context(), c.Request)
		if err != nil {
			logger.Error("session lookup failed", map[string]any{
				"error": err.Error(),
			})
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if sess == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), principalKey, auth.Principal{
			ID:    sess.UserID,
			Email: sess.Email,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

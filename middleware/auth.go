package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenVerifier validates a bearer token and returns the owning user id.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (string, error)
}

// AuthMiddleware gates a route group behind token verification. A nil
// verifier means the auth service never initialized; those routes answer 503
// instead of taking the process down.
func AuthMiddleware(verifier TokenVerifier, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Authentication service unavailable"})
			return
		}

		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - No token provided"})
			return
		}

		uid, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Warnw("token verification failed", "error", err, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("uid", uid)
		c.Next()
	}
}

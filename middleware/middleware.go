package middleware

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yug-24/TaskFlow/config"
)

// Request bodies larger than this are rejected by the JSON binder.
const maxBodyBytes = 1 << 20

// SetupMiddleware wires the request-level plumbing: CORS, body size cap,
// structured request logging, panic recovery.
func SetupMiddleware(r *gin.Engine, conf config.Config, logger *zap.SugaredLogger) {
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  NewOriginChecker(conf.Origins(), conf.DevOriginSuffix),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
		c.Next()
	})

	r.Use(RequestLogger(logger))

	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Errorw("panic recovered", "error", err, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
}

// NewOriginChecker allows the exact configured origins plus any origin whose
// hostname ends with the development suffix. With nothing configured every
// origin is allowed, matching local development defaults.
func NewOriginChecker(exact []string, devSuffix string) func(string) bool {
	return func(origin string) bool {
		if len(exact) == 0 && devSuffix == "" {
			return true
		}
		for _, o := range exact {
			if origin == o {
				return true
			}
		}
		if devSuffix != "" {
			if u, err := url.Parse(origin); err == nil && strings.HasSuffix(u.Hostname(), devSuffix) {
				return true
			}
		}
		return false
	}
}

package http

import (
	nethttp "net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipehub/backend/internal/infrastructure/security"
)

const userIDKey = "auth.user_id"

// authRequired validates the bearer token and stores the user id on the
// request context.
func authRequired(tokens *security.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(nethttp.StatusUnauthorized, errorBody{
				Code:    "MISSING_TOKEN",
				Message: "authorization required",
			})
			return
		}

		userID, err := tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(nethttp.StatusUnauthorized, errorBody{
				Code:    "INVALID_TOKEN",
				Message: "invalid or expired token",
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID reads the id stored by authRequired.
func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

// requestLogger logs one line per request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}

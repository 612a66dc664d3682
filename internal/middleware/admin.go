package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminToken guards destructive routes with a shared secret carried in the
// X-Admin-Token header. With an empty token the guard is disabled, matching
// the open behavior of the original deployment.
func AdminToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		provided := c.GetHeader("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin token required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

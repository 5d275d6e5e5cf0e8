package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"invoice-app/config"

	"github.com/gin-gonic/gin"
)

// CronAuthMiddleware gates scheduled-job triggers behind the shared
// CRON_SECRET bearer token. With no secret configured the trigger stays
// open; fine for local dev, set the secret in production.
func CronAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.CRON_SECRET
		if secret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}

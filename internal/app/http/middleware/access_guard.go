package middleware

import (
	"net/http"
	"time"

	"invoice-app/database"
	"invoice-app/internal/domain/access"
	"invoice-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireActiveAccess blocks users whose trial has elapsed and who have no
// active plan. Locked users get a 402 pointing them at the billing portal.
func RequireActiveAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		externalID := c.GetString("external_id")

		var user users.User
		if err := database.DB.Where("external_id = ?", externalID).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Account not synced yet",
			})
			return
		}

		if access.ComputeState(time.Now(), user) == access.StateLocked {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "Your trial has expired. Subscribe to keep using the app.",
			})
			return
		}

		c.Next()
	}
}

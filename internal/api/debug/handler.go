package debug

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// EnvCheck reports which expected environment variables are present.
// Values are never echoed back, only booleans.
func EnvCheck(c *gin.Context) {
	keys := []string{
		"DB_URL",
		"JWT_SECRET",
		"GOOGLE_CLIENT_ID",
		"GOOGLE_CLIENT_SECRET",
		"GOOGLE_REDIRECT_URL",
		"STRIPE_SECRET_KEY",
		"STRIPE_WEBHOOK_SECRET",
		"GEMINI_API_KEY",
		"CRON_SECRET",
	}

	present := map[string]bool{}
	for _, k := range keys {
		present[k] = os.Getenv(k) != ""
	}

	c.JSON(http.StatusOK, gin.H{"configured": present})
}

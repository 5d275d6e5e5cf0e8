package users

import (
	"net/http"
	"time"

	"invoice-app/database"
	"invoice-app/internal/domain/access"
	"invoice-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	externalID := c.GetString("external_id")
	if externalID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.
		Where("external_id = ?", externalID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()
	policy := access.ComputePolicy(now, user)

	resp := MeResponse{
		User:  BuildUserDTO(user),
		Trial: BuildTrialDTO(now, user),
		Access: AccessDTO{
			State:        string(policy.State),
			Capabilities: policy.Capabilities,
		},
	}

	c.JSON(http.StatusOK, resp)
}

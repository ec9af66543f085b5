package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/willyg23/predictive-car-maintenance-SD/repository"
)

// POST /create_fake_user
func CreateFakeUser(repo *repository.CarRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userUUID, err := repo.CreateFakeUser(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("Failed to create fake user")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "success",
			"message":   "Fake user data created",
			"user_uuid": userUUID.String(),
		})
	}
}

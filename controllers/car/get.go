package carControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/willyg23/predictive-car-maintenance-SD/repository"
)

// GET /user/:uuid/cars
func GetUserCars(repo *repository.CarRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userUUID, err := uuid.Parse(c.Param("uuid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid user uuid"})
			return
		}

		cars, err := repo.ListUserCars(c.Request.Context(), userUUID)
		if err != nil {
			log.Error().Err(err).Str("user_uuid", userUUID.String()).Msg("Failed to fetch cars")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to fetch cars"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "data": cars})
	}
}

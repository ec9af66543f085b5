package carControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/willyg23/predictive-car-maintenance-SD/repository"
)

// PUT /user/:uuid/car/:car_id/details
func UpdateCarDetails(repo *repository.CarRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userUUID, err := uuid.Parse(c.Param("uuid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid user uuid"})
			return
		}
		carID, err := strconv.Atoi(c.Param("car_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid car id"})
			return
		}

		var input repository.CarDetailsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "No update data provided"})
			return
		}

		details, err := repo.UpdateCarDetails(c.Request.Context(), userUUID, carID, input)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrCarNotFound):
				c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
			case errors.Is(err, repository.ErrNoValidFields):
				c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			default:
				log.Error().Err(err).Str("user_uuid", userUUID.String()).Int("car_id", carID).Msg("Failed to update car details")
				c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to update car details"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "data": details})
	}
}

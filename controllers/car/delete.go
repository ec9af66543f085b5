package carControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/willyg23/predictive-car-maintenance-SD/repository"
)

// DELETE /user/:uuid/car/:car_id
func DeleteUserCar(repo *repository.CarRepository) gin.HandlerFunc {
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

		if err := repo.DeleteCarForUser(c.Request.Context(), userUUID, carID); err != nil {
			if errors.Is(err, repository.ErrCarNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
				return
			}
			log.Error().Err(err).Str("user_uuid", userUUID.String()).Int("car_id", carID).Msg("Failed to delete car")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to delete car"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "message": fmt.Sprintf("Car %d successfully deleted", carID)})
	}
}

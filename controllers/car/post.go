package carControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/willyg23/predictive-car-maintenance-SD/repository"
)

// POST /user/:uuid/car/add_user_car
func AddUserCar(repo *repository.CarRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userUUID, err := uuid.Parse(c.Param("uuid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid user uuid"})
			return
		}

		var input repository.CarDetailsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Missing car data in request body"})
			return
		}
		// An empty object carries no car data either.
		if len(input.Updates()) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Missing car data in request body"})
			return
		}

		details, err := repo.CreateCarForUser(c.Request.Context(), userUUID, input)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "User not found"})
				return
			}
			log.Error().Err(err).Str("user_uuid", userUUID.String()).Msg("Failed to add car")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "An internal error occurred"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "Car added successfully", "data": details})
	}
}

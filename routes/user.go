package routes

import (
	"github.com/gin-gonic/gin"

	carControllers "github.com/willyg23/predictive-car-maintenance-SD/controllers/car"
	"github.com/willyg23/predictive-car-maintenance-SD/repository"
)

// SetupUserCarRoutes registers the "/user/*" car endpoints.
func SetupUserCarRoutes(g *gin.RouterGroup, repo *repository.CarRepository) {
	userGroup := g.Group("/user")
	{
		userGroup.GET("/:uuid/cars", carControllers.GetUserCars(repo))
		userGroup.GET("/:uuid/cars/export", carControllers.ExportUserCarsToExcel(repo))
		userGroup.POST("/:uuid/car/add_user_car", carControllers.AddUserCar(repo))
		userGroup.DELETE("/:uuid/car/:car_id", carControllers.DeleteUserCar(repo))
		userGroup.PUT("/:uuid/car/:car_id/details", carControllers.UpdateCarDetails(repo))
	}
}

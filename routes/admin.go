package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/willyg23/predictive-car-maintenance-SD/config"
	adminControllers "github.com/willyg23/predictive-car-maintenance-SD/controllers/admin"
	"github.com/willyg23/predictive-car-maintenance-SD/middleware"
	"github.com/willyg23/predictive-car-maintenance-SD/repository"
)

// SetupAdminRoutes registers the schema and seeding endpoints, API-key
// protected when an admin key is configured.
func SetupAdminRoutes(g *gin.RouterGroup, db *gorm.DB, repo *repository.CarRepository, cfg *config.Config) {
	adminGroup := g.Group("/")
	adminGroup.Use(middleware.RequireAPIKey(cfg))
	{
		adminGroup.POST("/create_db_schema", adminControllers.CreateDBSchema(db))
		adminGroup.POST("/create_fake_user", adminControllers.CreateFakeUser(repo))
	}
}

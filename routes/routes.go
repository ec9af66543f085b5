package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/willyg23/predictive-car-maintenance-SD/config"
	"github.com/willyg23/predictive-car-maintenance-SD/repository"
)

// SetupRoutes is the single entry-point that wires up all route groups.
// When ENVIRONMENT is set the same surface is also mounted under /{env},
// matching the gateway path prefix used in deployed environments.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	repo := repository.NewCarRepository(db)

	register(&r.RouterGroup, db, repo, cfg)
	if cfg.Environment != "" {
		register(r.Group("/"+cfg.Environment), db, repo, cfg)
	}
}

func register(g *gin.RouterGroup, db *gorm.DB, repo *repository.CarRepository, cfg *config.Config) {
	g.GET("/", defaultRoute)
	g.GET("/health", healthCheck)

	SetupUserCarRoutes(g, repo)
	SetupAdminRoutes(g, db, repo, cfg)
	SetupGPTRoutes(g, cfg)
}

func defaultRoute(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<p>default route</p>"))
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/willyg23/predictive-car-maintenance-SD/config"
	gptControllers "github.com/willyg23/predictive-car-maintenance-SD/controllers/gpt"
)

// SetupGPTRoutes registers the car-maintenance chat proxy.
func SetupGPTRoutes(g *gin.RouterGroup, cfg *config.Config) {
	g.POST("/generate-gpt-response", gptControllers.GenerateResponseHandler(cfg))
}

package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/willyg23/predictive-car-maintenance-SD/database"
)

// POST /create_db_schema
// Safe to call against an already-initialized database.
func CreateDBSchema(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := database.EnsureSchema(db); err != nil {
			log.Error().Err(err).Msg("Failed to create schema")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
			return
		}
		log.Info().Msg("Database schema created")
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Database schema created"})
	}
}

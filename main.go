package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/willyg23/predictive-car-maintenance-SD/config"
	"github.com/willyg23/predictive-car-maintenance-SD/database"
	"github.com/willyg23/predictive-car-maintenance-SD/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	setupLogging(os.Getenv("ENVIRONMENT"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := database.EnsureSchema(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}

	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, cfg)

	log.Info().Str("port", cfg.Port).Str("environment", cfg.Environment).Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// setupLogging configures zerolog: console output outside prod, JSON in
// prod so the gateway's log collector gets structured lines.
func setupLogging(env string) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if env != "prod" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}
}

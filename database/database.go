package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/willyg23/predictive-car-maintenance-SD/config"
	"github.com/willyg23/predictive-car-maintenance-SD/models"
)

// Connect opens the GORM Postgres connection described by cfg. A full
// DATABASE_URL wins over the individual host/port fields.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Info().Str("host", cfg.DBHost).Str("dbname", cfg.DBName).Msg("Database connected")
	return db, nil
}

// EnsureSchema creates the uuid-ossp extension and all five tables if they
// do not exist yet. Idempotent; everything runs in one transaction so a
// failure leaves no table partially applied.
func EnsureSchema(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
				return fmt.Errorf("create uuid extension: %w", err)
			}
		}
		if err := tx.AutoMigrate(
			&models.User{},
			&models.Car{},
			&models.CarDetails{},
			&models.ErrorEvent{},
			&models.ErrorPart{},
		); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
		return nil
	})
}

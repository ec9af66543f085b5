package config

import (
	"fmt"
	"os"
)

// Config holds everything the process reads from the environment. It is
// built once in main and passed down; nothing else touches os.Getenv for
// these values.
type Config struct {
	// Either DatabaseURL or the individual DB* fields must be set.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	Port        string
	Environment string

	// AdminAPIKey gates the schema/seed endpoints when non-empty.
	AdminAPIKey string

	OpenAIAPIKey string
	OpenAIAPIURL string
}

const defaultOpenAIAPIURL = "https://api.openai.com/v1/chat/completions"

// Load reads the configuration from the environment. Call godotenv.Load()
// first if a .env file should be honored.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       getenvDefault("DB_PORT", "5432"),
		DBUser:       os.Getenv("DB_USERNAME"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       getenvDefault("DB_NAME", "dev_db"),
		Port:         getenvDefault("PORT", "8080"),
		Environment:  os.Getenv("ENVIRONMENT"),
		AdminAPIKey:  os.Getenv("ADMIN_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIAPIURL: getenvDefault("OPENAI_API_URL", defaultOpenAIAPIURL),
	}

	if cfg.DatabaseURL == "" && cfg.DBHost == "" {
		return nil, fmt.Errorf("database configuration missing: set DATABASE_URL or DB_HOST")
	}
	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

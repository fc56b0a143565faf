package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// RolloverSchedule is the cron spec for the nightly sweep that pushes
	// unpaid obligations into the next period. The default runs shortly
	// after midnight so the sweep lands on the new day.
	RolloverSchedule string
}

var appConfig *Config

// Load loads configuration from environment variables, reading .env first
// when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "nitronflow"),
		DBPassword: getEnv("DB_PASSWORD", "nitronflow"),
		DBName:     getEnv("DB_NAME", "nitronflow"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RolloverSchedule: getEnv("ROLLOVER_SCHEDULE", "5 0 * * *"),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration, loading it on first use.
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

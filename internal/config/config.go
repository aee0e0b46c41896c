package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the maintenance jobs read from the environment.
type Config struct {
	App      AppConfig
	Database MongoConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
}

// MongoConfig carries connection settings for the shared document store.
type MongoConfig struct {
	URI                    string
	Database               string
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	MaxPoolSize            uint64
}

// AdminConfig feeds the ops-admin seed step. The password is env-only;
// when unset the step is skipped with a warning.
type AdminConfig struct {
	Email    string
	Password string
}

func Load() *Config {
	return &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "dealspot"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("DEBUG", false),
		},
		Database: MongoConfig{
			URI:                    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:               getEnv("MONGODB_DATABASE", "dealspot"),
			ConnectTimeout:         getEnvAsDuration("MONGODB_CONNECT_TIMEOUT", "10s"),
			ServerSelectionTimeout: getEnvAsDuration("MONGODB_SELECT_TIMEOUT", "5s"),
			MaxPoolSize:            getEnvAsUint64("MONGODB_MAX_POOL_SIZE", 20),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "ops@dealspot.local"),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseUint(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

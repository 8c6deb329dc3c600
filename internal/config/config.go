package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"blog-api/internal/infrastructure/database"
)

const defaultMongoURI = "mongodb://localhost:27017"

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App      AppConfig
	Database *database.MongoConfig
	HTTP     HTTPConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type HTTPConfig struct {
	AllowedOrigins []string
	StaticDir      string // empty disables the browser client
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	dbConfig, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Blog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("PORT", "3000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: dbConfig,
		HTTP: HTTPConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
			StaticDir:      getEnv("STATIC_DIR", ""),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.App.Port); err != nil {
		return fmt.Errorf("invalid PORT %q", c.App.Port)
	}
	if c.Database == nil || c.Database.URI == "" {
		return fmt.Errorf("MONGO_DB_CREDENTIAL must be set")
	}
	if c.Database.Database == "" || c.Database.Collection == "" {
		return fmt.Errorf("MONGO_DB_NAME and MONGO_COLLECTION cannot be empty")
	}

	// Production environment không được dùng local default
	if c.App.Environment == "production" && c.Database.URI == defaultMongoURI {
		return fmt.Errorf("MONGO_DB_CREDENTIAL must be set in production")
	}

	if c.HTTP.StaticDir != "" {
		info, err := os.Stat(c.HTTP.StaticDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("STATIC_DIR %q is not a directory", c.HTTP.StaticDir)
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

package config

import (
	"fmt"
	"strconv"
	"time"

	"blog-api/internal/infrastructure/database"
)

// LoadDatabaseConfig đọc config từ environment variables và trả về MongoConfig
func LoadDatabaseConfig() (*database.MongoConfig, error) {
	maxPoolSize, err := strconv.ParseUint(getEnv("MONGO_MAX_POOL_SIZE", "25"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_MAX_POOL_SIZE: %w", err)
	}

	maxRetries, err := strconv.Atoi(getEnv("MONGO_MAX_RETRIES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_MAX_RETRIES: %w", err)
	}
	if maxRetries < 1 {
		return nil, fmt.Errorf("invalid MONGO_MAX_RETRIES: must be at least 1")
	}

	// Parse durations
	connectTimeout, err := time.ParseDuration(getEnv("MONGO_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_CONNECT_TIMEOUT: %w", err)
	}

	retryDelay, err := time.ParseDuration(getEnv("MONGO_RETRY_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_RETRY_DELAY: %w", err)
	}

	return &database.MongoConfig{
		URI:            getEnv("MONGO_DB_CREDENTIAL", defaultMongoURI),
		Database:       getEnv("MONGO_DB_NAME", "blog"),
		Collection:     getEnv("MONGO_COLLECTION", "blogs"),
		MaxPoolSize:    maxPoolSize,
		ConnectTimeout: connectTimeout,
		MaxRetries:     maxRetries,
		RetryDelay:     retryDelay,
	}, nil
}

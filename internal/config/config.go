package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the storefront configuration
type Config struct {
	HTTPPort       string
	Environment    string
	LogLevel       string
	TracingEnabled bool

	// Persistence
	StorageBackend string // "file" or "redis"
	DataDir        string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	// Simulated catalog latency
	CatalogListDelay time.Duration
	CatalogItemDelay time.Duration
}

// Load loads configuration from the environment, reading .env first if present
func Load() *Config {
	// Missing .env is fine, real env vars still apply
	_ = godotenv.Load()

	return &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		TracingEnabled: getEnvBool("TRACING_ENABLED", false),

		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),

		CatalogListDelay: getEnvDuration("CATALOG_LIST_DELAY", 1000*time.Millisecond),
		CatalogItemDelay: getEnvDuration("CATALOG_ITEM_DELAY", 500*time.Millisecond),
	}
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultHTTPTimeout = 15 * time.Second
	DefaultLogLevel    = "info"
	DefaultPlatform    = "cli"
	DefaultAppVersion  = "dev"
)

type Config struct {
	Env         string
	APIBaseURL  string
	HTTPTimeout time.Duration
	RedisURL    string
	LogLevel    string
	AppVersion  string
	Platform    string
}

func Load() *Config {
	// A missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	return &Config{
		Env:         getEnv("ENV", "development"),
		APIBaseURL:  mustGetEnv("API_BASE_URL"),
		HTTPTimeout: getEnvAsDuration("HTTP_TIMEOUT", DefaultHTTPTimeout),
		RedisURL:    os.Getenv("REDIS_URL"),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		AppVersion:  getEnv("APP_VERSION", DefaultAppVersion),
		Platform:    getEnv("PLATFORM", DefaultPlatform),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %s", key, defaultVal)
		return defaultVal
	}
	return val
}

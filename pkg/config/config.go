package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	DataDir         string
	UpstreamBaseURL string
	UpstreamAPIKey  string
	JWTSecret       string
	ProductCacheTTL time.Duration
	TrackPollEvery  time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:9090/api"),
		UpstreamAPIKey:  getEnv("UPSTREAM_API_KEY", ""),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key"),
		ProductCacheTTL: getEnvAsDuration("PRODUCT_CACHE_TTL", 5*time.Minute),
		TrackPollEvery:  getEnvAsDuration("TRACK_POLL_INTERVAL", 10*time.Second),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}

// Package config loads process configuration from the environment
// (optionally seeded by a .env file), grounded on shared/config.Load() in
// the teacher repo and extended with the AWS/queue/provider settings this
// domain needs.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Port     string
	CORS     CORSConfig
	JWT      JWTConfig
	AWS      AWSConfig
	Redis    RedisConfig
	Provider ProviderConfig
}

type CORSConfig struct {
	AllowedOrigins string
}

type JWTConfig struct {
	Secret string
}

// AWSConfig names the DynamoDB tables, SQS queue, and SSM parameters the
// core depends on. Table/queue provisioning itself is infrastructure, out
// of scope for this repository.
type AWSConfig struct {
	Region string

	RouteTable     string
	DelayTable     string
	CityIndexTable string

	QueueURL          string
	QueueMaxReceive   int
	OrchestratorChunk int

	LockParamName    string
	EventAPIKeyParam string
	LockStaleAfter   time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
}

type ProviderConfig struct {
	WeatherBaseURL string
	EventBaseURL   string
	HTTPTimeout    time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("ENV", "development")
	defaultCORS := "http://localhost:3000"
	if env == "production" {
		defaultCORS = ""
	}

	cfg := &Config{
		Env:      env,
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnv("PORT", "6000"),
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", defaultCORS),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "secret"),
		},
		AWS: AWSConfig{
			Region:            getEnv("AWS_REGION", "us-east-1"),
			RouteTable:        getEnv("ROUTE_TABLE_NAME", "commute-routes"),
			DelayTable:        getEnv("DELAY_TABLE_NAME", "commute-delays"),
			CityIndexTable:    getEnv("CITY_INDEX_TABLE_NAME", "commute-city-index"),
			QueueURL:          getEnv("FORECAST_QUEUE_URL", ""),
			QueueMaxReceive:   getEnvInt("FORECAST_QUEUE_MAX_RECEIVE", 5),
			OrchestratorChunk: getEnvInt("ORCHESTRATOR_CHUNK_SIZE", 1000),
			LockParamName:     getEnv("ORCHESTRATOR_LOCK_PARAM", "/commutecast/orchestrator/lock"),
			EventAPIKeyParam:  getEnv("EVENT_API_KEY_PARAM", "/commutecast/providers/event-api-key"),
			LockStaleAfter:    getEnvDuration("ORCHESTRATOR_LOCK_STALE_AFTER", time.Hour),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Provider: ProviderConfig{
			WeatherBaseURL: getEnv("WEATHER_PROVIDER_BASE_URL", "https://api.open-meteo.com/v1/forecast"),
			EventBaseURL:   getEnv("EVENT_PROVIDER_BASE_URL", "https://api.eventprovider.example/events.json"),
			HTTPTimeout:    getEnvDuration("PROVIDER_HTTP_TIMEOUT", 10*time.Second),
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

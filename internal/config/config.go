// Package config loads the application configuration from the environment.
// Engine thresholds live in models.Config; this covers the harness around
// it: data source, strategy selection and logging.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	Symbol         string
	Interval       string
	CandleCount    int
	CandleFile     string
	Strategy       string
	MinScore       float64
	DatabaseURL    string
	BaseURL        string
	LogLevel       string
	RequestTimeout int // seconds
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &Config{
		Symbol:         getEnvWithDefault("SYMBOL", "BTCUSDT"),
		Interval:       getEnvWithDefault("INTERVAL", "1h"),
		CandleCount:    getEnvIntWithDefault("CANDLE_COUNT", 500),
		CandleFile:     os.Getenv("CANDLE_FILE"),
		Strategy:       getEnvWithDefault("STRATEGY", "momentum"),
		MinScore:       getEnvFloatWithDefault("MIN_SCORE", 70),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		BaseURL:        getEnvWithDefault("MARKET_DATA_URL", "https://api.binance.com"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		RequestTimeout: getEnvIntWithDefault("REQUEST_TIMEOUT", 30),
	}

	return cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel  string
	LogFormat string
	LogColor  bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "warn")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "console")),
		LogColor:  getEnvBool("LOG_COLOR", false),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}

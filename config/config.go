package config

import (
	"os"
	"time"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBName        string
	DBPassword    string
	ServerPort    string
	ReportTimeout time.Duration
}

func LoadConfig() Config {
	return Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBName:        getEnv("DB_NAME", "shopapp"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		ServerPort:    getEnv("PORT", "8080"),
		ReportTimeout: getDuration("REPORT_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

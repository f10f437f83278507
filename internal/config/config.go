package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort   string
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	JWTSecret    string
	StoreTimeout time.Duration
	GinMode      string
}

func Load() *Config {
	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		DBDriver:     getEnv("DB_DRIVER", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "taskuser"),
		DBPassword:   getEnv("DB_PASSWORD", "taskpassword"),
		DBName:       getEnv("DB_NAME", "task_management"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		JWTSecret:    getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
		StoreTimeout: getEnvSeconds("STORE_TIMEOUT_SECONDS", 5),
		GinMode:      getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	value := os.Getenv(key)
	if value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}

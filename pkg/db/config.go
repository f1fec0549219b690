package db

import (
	"os"
	"strconv"
)

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LoadPostgresConfig reads connection settings from the environment with
// local-development defaults.
func LoadPostgresConfig() PostgresConfig {
	cfg := PostgresConfig{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     5432,
		User:     getenv("DB_USER", "pricing"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   getenv("DB_NAME", "pricing"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
	if port, err := strconv.Atoi(os.Getenv("DB_PORT")); err == nil && port > 0 {
		cfg.Port = port
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

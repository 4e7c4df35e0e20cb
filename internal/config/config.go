package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	DatabaseURL  string
	DBMaxConns   int32
	CacheTTL     time.Duration
	QueryTimeout time.Duration
	DefaultLimit int
	MaxLimit     int
}

func Load() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DBMaxConns:   int32(getEnvInt("DB_MAX_CONNS", 10)),
		CacheTTL:     time.Duration(getEnvInt("CACHE_TTL_SECONDS", 30)) * time.Second,
		QueryTimeout: time.Duration(getEnvInt("QUERY_TIMEOUT_MS", 2000)) * time.Millisecond,
		DefaultLimit: getEnvInt("DEFAULT_LIMIT", 100),
		MaxLimit:     getEnvInt("MAX_LIMIT", 1000),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// RedisURL enables the saved-itinerary read cache when set,
	// e.g. "redis://localhost:6379/0". Empty disables caching.
	RedisURL string

	// CacheTTL is how long a cached itinerary lives. Defaults to 10m.
	CacheTTL time.Duration

	// GenerationDelay is an artificial pause before each synthesis,
	// for demoing loading states. Defaults to 0.
	GenerationDelay time.Duration

	// MinOneDay makes a trip whose start and end coincide last one day
	// instead of zero. Defaults to true.
	MinOneDay bool

	// RateLimitRPS and RateLimitBurst bound per-client generation requests.
	// Defaults: 1 request/second with a burst of 5.
	RateLimitRPS   float64
	RateLimitBurst int

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or
// naming the first variable whose value cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		RedisURL:    os.Getenv("REDIS_URL"),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	var errs []error
	cfg.CacheTTL = parseEnv("CACHE_TTL", 10*time.Minute, time.ParseDuration, &errs)
	cfg.GenerationDelay = parseEnv("GENERATION_DELAY", 0, time.ParseDuration, &errs)
	cfg.MinOneDay = parseEnv("MIN_ONE_DAY", true, strconv.ParseBool, &errs)
	cfg.RateLimitRPS = parseEnv("RATE_LIMIT_RPS", 1, parseFloat, &errs)
	cfg.RateLimitBurst = parseEnv("RATE_LIMIT_BURST", 5, strconv.Atoi, &errs)
	cfg.MaxBodyBytes = parseEnv("MAX_BODY_BYTES", 1<<20, parseInt64, &errs)

	if cfg.CacheTTL <= 0 {
		errs = append(errs, errors.New("CACHE_TTL must be positive"))
	}
	if cfg.GenerationDelay < 0 {
		errs = append(errs, errors.New("GENERATION_DELAY must not be negative"))
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst < 1 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must be positive and RATE_LIMIT_BURST at least 1"))
	}
	if cfg.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES must be positive"))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseEnv parses the variable named by key with parse, returning fallback
// when it is unset. Parse failures are appended to errs.
func parseEnv[T any](key string, fallback T, parse func(string) (T, error), errs *[]error) T {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := parse(strings.TrimSpace(raw))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s %q: %w", key, raw, err))
		return fallback
	}
	return v
}

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func parseInt64(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

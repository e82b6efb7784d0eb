// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string for run history.
	// Empty disables run history.
	DatabaseURL string

	// LogLevel is one of debug, info, warn, error. Defaults to "info".
	LogLevel string

	// LogFile, when set, sends logs to a size-rotated file instead of stdout.
	LogFile string

	// CORSOrigins lists allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	CORSOrigins []string

	// CacheSize is how many computed scenarios are kept in memory. Defaults to 64.
	CacheSize int

	// MaxBodyBytes limits request bodies for ad-hoc computations. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming every variable that holds an invalid value.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     os.Getenv("LOG_FILE"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var invalid []string

	cacheSize, err := positiveInt("CACHE_SIZE", 64)
	if err != nil {
		invalid = append(invalid, err.Error())
	}
	cfg.CacheSize = int(cacheSize)

	cfg.MaxBodyBytes, err = positiveInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		invalid = append(invalid, err.Error())
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, "; "))
	}
	return cfg, nil
}

// HistoryEnabled reports whether run history is backed by a database.
func (c Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// positiveInt parses key as an integer > 0, or returns fallback when unset.
func positiveInt(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

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

// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultCacheTTL = 5 * time.Minute

// Config holds HTTP and cache settings. Database and Redis settings are
// loaded by platform/db and platform/redis.
type Config struct {
	Port         string
	CORSOrigins  []string
	UserCacheTTL time.Duration
}

// LoadDotEnv loads a .env file when present. A missing file is not an error.
func LoadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		slog.Info(".env not found; using system environment variables", "path", path)
	}
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	cfg := Config{
		Port:         fallback(os.Getenv("PORT"), "8080"),
		CORSOrigins:  parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		UserCacheTTL: defaultCacheTTL,
	}

	if raw := strings.TrimSpace(os.Getenv("USER_CACHE_TTL")); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return Config{}, fmt.Errorf("invalid USER_CACHE_TTL %q", raw)
		}
		cfg.UserCacheTTL = ttl
	}

	return cfg, nil
}

// HTTPAddress returns the address for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return ":" + c.Port
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

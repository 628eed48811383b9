// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Server    ServerConfig
	TMDB      TMDBConfig
	RateLimit RateLimitConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level      string
	File       string // Optional rotated log file
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string        // Server port (default: 8080)
	ReadTimeout    time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout   time.Duration // HTTP write timeout (default: 60s)
	IdleTimeout    time.Duration // HTTP idle timeout (default: 60s)
	AllowedOrigins []string      // CORS origins (default: *)
}

// TMDBConfig holds content provider configuration.
type TMDBConfig struct {
	APIKey   string
	BaseURL  string
	Language string
	Region   string // Reference region for watch providers and upcoming releases
	Timeout  time.Duration

	// Sliding window admission control for outbound calls.
	RateLimit  int
	RateWindow time.Duration

	// Response cache; CacheSize 0 disables it.
	CacheSize int
	CacheTTL  time.Duration
}

// RateLimitConfig holds inbound per-IP rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Optional path of a rotated log file")
	serverPort := flag.String("port", "", "Server port (default: 8080)")
	tmdbAPIKey := flag.String("tmdb-api-key", "", "TMDB API key or read access token")
	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// godotenv never overrides variables that are already set.
	_ = godotenv.Load(*envFile)

	return load(func(key string) string {
		switch key {
		case "ENV":
			return *env
		case "LOG_LEVEL":
			return *logLevel
		case "LOG_FILE":
			return *logFile
		case "SERVER_PORT":
			return *serverPort
		case "TMDB_API_KEY":
			return *tmdbAPIKey
		}
		return ""
	})
}

// load builds and validates a Config. flagValue returns the command-line value for an env key.
func load(flagValue func(string) string) (*Config, error) {
	get := func(key, def string) string { return getConfigValue(flagValue(key), key, def) }

	cfg := &Config{
		App: AppConfig{
			Environment: get("ENV", "development"),
		},
		Logger: LoggerConfig{
			Level:      get("LOG_LEVEL", "info"),
			File:       get("LOG_FILE", ""),
			MaxSizeMB:  getIntConfigValue("", "LOG_MAX_SIZE_MB", 50),
			MaxBackups: getIntConfigValue("", "LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getIntConfigValue("", "LOG_MAX_AGE_DAYS", 14),
		},
		Server: ServerConfig{
			Port:           get("SERVER_PORT", "8080"),
			AllowedOrigins: splitList(get("CORS_ALLOWED_ORIGINS", "*")),
		},
		TMDB: TMDBConfig{
			APIKey:    get("TMDB_API_KEY", ""),
			BaseURL:   strings.TrimRight(get("TMDB_BASE_URL", "https://api.themoviedb.org/3"), "/"),
			Language:  get("TMDB_LANGUAGE", "en-US"),
			Region:    strings.ToUpper(get("TMDB_REGION", "US")),
			RateLimit: getIntConfigValue("", "TMDB_RATE_LIMIT", 40),
			CacheSize: getIntConfigValue("", "TMDB_CACHE_SIZE", 512),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getIntConfigValue("", "API_RATE_LIMIT_RPM", 100),
			Burst:             getIntConfigValue("", "API_RATE_LIMIT_BURST", 20),
		},
	}

	durations := []struct {
		key    string
		def    string
		target *time.Duration
	}{
		{"SERVER_READ_TIMEOUT", "15s", &cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", "60s", &cfg.Server.WriteTimeout},
		{"SERVER_IDLE_TIMEOUT", "60s", &cfg.Server.IdleTimeout},
		{"TMDB_TIMEOUT", "10s", &cfg.TMDB.Timeout},
		{"TMDB_RATE_WINDOW", "10s", &cfg.TMDB.RateWindow},
		{"TMDB_CACHE_TTL", "5m", &cfg.TMDB.CacheTTL},
	}
	for _, d := range durations {
		raw := get(d.key, d.def)
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", strings.ToLower(d.key), raw, err)
		}
		*d.target = parsed
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %q (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("invalid server port: %q", c.Server.Port)
	}

	if c.TMDB.APIKey == "" {
		return errors.New("TMDB_API_KEY is required")
	}
	if c.TMDB.RateLimit <= 0 || c.TMDB.RateWindow <= 0 {
		return errors.New("TMDB rate limit and window must be positive")
	}
	if c.TMDB.CacheSize < 0 {
		return errors.New("TMDB cache size cannot be negative")
	}

	if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("API rate limit and burst must be positive")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(strings.TrimSpace(strValue))
	if err != nil {
		return defaultValue
	}
	return result
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

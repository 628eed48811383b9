package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Server: ServerConfig{Port: "8080"},
		TMDB: TMDBConfig{
			APIKey:     "key",
			RateLimit:  40,
			RateWindow: 10 * time.Second,
			CacheSize:  10,
		},
		RateLimit: RateLimitConfig{RequestsPerMinute: 100, Burst: 20},
	}
}

func noFlags(string) string { return "" }

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"DEBUG", true}, // case insensitive
		{"trace", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logger.Level = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing api key", func(c *Config) { c.TMDB.APIKey = "" }},
		{"zero provider limit", func(c *Config) { c.TMDB.RateLimit = 0 }},
		{"zero provider window", func(c *Config) { c.TMDB.RateWindow = 0 }},
		{"negative cache size", func(c *Config) { c.TMDB.CacheSize = -1 }},
		{"non numeric port", func(c *Config) { c.Server.Port = "http" }},
		{"zero inbound burst", func(c *Config) { c.RateLimit.Burst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "secret")

	cfg, err := load(noFlags)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "US", cfg.TMDB.Region)
	assert.Equal(t, 40, cfg.TMDB.RateLimit)
	assert.Equal(t, 10*time.Second, cfg.TMDB.RateWindow)
	assert.Equal(t, 5*time.Minute, cfg.TMDB.CacheTTL)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "secret")
	t.Setenv("TMDB_REGION", "gb")
	t.Setenv("TMDB_BASE_URL", "http://localhost:9999/3/")
	t.Setenv("TMDB_RATE_LIMIT", "5")
	t.Setenv("TMDB_RATE_WINDOW", "1s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := load(noFlags)
	require.NoError(t, err)

	assert.Equal(t, "GB", cfg.TMDB.Region)
	assert.Equal(t, "http://localhost:9999/3", cfg.TMDB.BaseURL)
	assert.Equal(t, 5, cfg.TMDB.RateLimit)
	assert.Equal(t, time.Second, cfg.TMDB.RateWindow)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_FlagsWinOverEnvironment(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "from-env")
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := load(func(key string) string {
		if key == "SERVER_PORT" {
			return "7000"
		}
		return ""
	})
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.TMDB.APIKey)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "secret")
	t.Setenv("TMDB_TIMEOUT", "soon")

	_, err := load(noFlags)
	assert.Error(t, err)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")

	_, err := load(noFlags)
	assert.ErrorContains(t, err, "TMDB_API_KEY")
}

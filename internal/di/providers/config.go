// Package providers contains dependency injection providers for the CineScope server.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/cinescope/cinescope-server/internal/config"
	"github.com/cinescope/cinescope-server/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	var file *logger.FileConfig
	if cfg.Logger.File != "" {
		file = &logger.FileConfig{
			Path:       cfg.Logger.File,
			MaxSizeMB:  cfg.Logger.MaxSizeMB,
			MaxBackups: cfg.Logger.MaxBackups,
			MaxAgeDays: cfg.Logger.MaxAgeDays,
		}
	}

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
		File:        file,
	})

	log.Info("Starting CineScope Server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"tmdb_base_url", cfg.TMDB.BaseURL,
		"region", cfg.TMDB.Region,
	)

	return log, nil
}

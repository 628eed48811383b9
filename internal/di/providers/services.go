package providers

import (
	"github.com/samber/do/v2"

	"github.com/cinescope/cinescope-server/internal/config"
	"github.com/cinescope/cinescope-server/internal/logger"
	"github.com/cinescope/cinescope-server/internal/ratelimit"
	"github.com/cinescope/cinescope-server/internal/service"
	"github.com/cinescope/cinescope-server/internal/tmdb"
	"github.com/cinescope/cinescope-server/internal/validation"
)

// ProviderWindow is the outbound call budget shared by every TMDB client.
type ProviderWindow struct {
	*ratelimit.SlidingWindow
}

// ProvideProviderWindow provides the outbound sliding window.
func ProvideProviderWindow(i do.Injector) (*ProviderWindow, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return &ProviderWindow{
		SlidingWindow: ratelimit.NewSlidingWindow(cfg.TMDB.RateLimit, cfg.TMDB.RateWindow),
	}, nil
}

// TMDBClientHandle wraps the TMDB client with shutdown capability.
type TMDBClientHandle struct {
	*tmdb.Client
}

// Shutdown implements do.Shutdownable.
func (h *TMDBClientHandle) Shutdown() error {
	h.Client.Close()
	return nil
}

// ProvideTMDBClient provides the content provider client.
func ProvideTMDBClient(i do.Injector) (*TMDBClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	window := do.MustInvoke[*ProviderWindow](i)

	client := tmdb.New(tmdb.Options{
		APIKey:    cfg.TMDB.APIKey,
		BaseURL:   cfg.TMDB.BaseURL,
		Language:  cfg.TMDB.Language,
		Region:    cfg.TMDB.Region,
		Timeout:   cfg.TMDB.Timeout,
		CacheSize: cfg.TMDB.CacheSize,
		CacheTTL:  cfg.TMDB.CacheTTL,
	}, window.SlidingWindow, log.WithComponent("tmdb"))

	log.Info("TMDB client initialized",
		"rate_limit", cfg.TMDB.RateLimit,
		"rate_window", cfg.TMDB.RateWindow,
		"cache_size", cfg.TMDB.CacheSize,
	)

	return &TMDBClientHandle{Client: client}, nil
}

// ProvideCategoryService provides the category aggregation service.
func ProvideCategoryService(i do.Injector) (*service.CategoryService, error) {
	client := do.MustInvoke[*TMDBClientHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewCategoryService(client.Client, log.Logger), nil
}

// ProvideListingService provides the general list service.
func ProvideListingService(i do.Injector) (*service.ListingService, error) {
	client := do.MustInvoke[*TMDBClientHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewListingService(client.Client, log.Logger), nil
}

// ProvideTitleService provides the detail page service.
func ProvideTitleService(i do.Injector) (*service.TitleService, error) {
	client := do.MustInvoke[*TMDBClientHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewTitleService(client.Client, log.Logger), nil
}

// ProvideSearchService provides the search service.
func ProvideSearchService(i do.Injector) (*service.SearchService, error) {
	client := do.MustInvoke[*TMDBClientHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewSearchService(client.Client, validation.New(), log.Logger), nil
}

// Package di provides dependency injection configuration for the CineScope server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/cinescope/cinescope-server/internal/config"
	"github.com/cinescope/cinescope-server/internal/di/providers"
	"github.com/cinescope/cinescope-server/internal/logger"
	"github.com/cinescope/cinescope-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Content provider
	do.Provide(injector, providers.ProvideProviderWindow)
	do.Provide(injector, providers.ProvideTMDBClient)

	// Business services
	do.Provide(injector, providers.ProvideCategoryService)
	do.Provide(injector, providers.ProvideListingService)
	do.Provide(injector, providers.ProvideTitleService)
	do.Provide(injector, providers.ProvideSearchService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the HTTP server is listening.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}

	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.ProviderWindow](injector)
	_ = do.MustInvoke[*providers.TMDBClientHandle](injector)

	// Business services
	_ = do.MustInvoke[*service.CategoryService](injector)
	_ = do.MustInvoke[*service.ListingService](injector)
	_ = do.MustInvoke[*service.TitleService](injector)
	_ = do.MustInvoke[*service.SearchService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}

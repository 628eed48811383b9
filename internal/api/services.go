package api

import (
	"github.com/cinescope/cinescope-server/internal/ratelimit"
	"github.com/cinescope/cinescope-server/internal/service"
)

// Services groups all business logic services used by the API server.
type Services struct {
	Category *service.CategoryService
	Listing  *service.ListingService
	Title    *service.TitleService
	Search   *service.SearchService
}

// Options configures the HTTP layer.
type Options struct {
	AllowedOrigins []string

	// Inbound per-IP limiter; nil disables inbound limiting.
	RateLimiter *ratelimit.KeyedRateLimiter

	// Outbound provider window, reported by the health check.
	ProviderWindow *ratelimit.SlidingWindow
}

package providers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/samber/do/v2"

	"github.com/cinescope/cinescope-server/internal/api"
	"github.com/cinescope/cinescope-server/internal/config"
	"github.com/cinescope/cinescope-server/internal/logger"
	"github.com/cinescope/cinescope-server/internal/ratelimit"
	"github.com/cinescope/cinescope-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	limiter *ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	defer h.limiter.Stop()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	window := do.MustInvoke[*ProviderWindow](i)

	services := &api.Services{
		Category: do.MustInvoke[*service.CategoryService](i),
		Listing:  do.MustInvoke[*service.ListingService](i),
		Title:    do.MustInvoke[*service.TitleService](i),
		Search:   do.MustInvoke[*service.SearchService](i),
	}

	limiter := ratelimit.NewPerInterval(cfg.RateLimit.RequestsPerMinute, time.Minute, cfg.RateLimit.Burst)

	handler := api.NewServer(services, api.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimiter:    limiter,
		ProviderWindow: window.SlidingWindow,
	}, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv, limiter: limiter}, nil
}

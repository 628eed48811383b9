// Package api provides the HTTP API server and handlers for CineScope.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cinescope/cinescope-server/internal/http/response"
)

// APIVersion is the version reported in the OpenAPI document.
const APIVersion = "1.0.0"

// Server holds dependencies for HTTP handlers.
type Server struct {
	services *Services
	opts     Options
	router   *chi.Mux
	api      huma.API
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(services *Services, opts Options, logger *slog.Logger) *Server {
	s := &Server{
		services: services,
		opts:     opts,
		router:   chi.NewRouter(),
		logger:   logger,
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("CineScope API", APIVersion)
	humaConfig.Info.Description = "Curated, category-organized movie and TV discovery on top of TMDB."
	// Drop the $schema link transformer so bodies keep their declared types.
	humaConfig.CreateHooks = nil
	humaConfig.Transformers = []huma.Transformer{EnvelopeTransformer}

	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// API exposes the Huma API, mainly for tests and OpenAPI generation.
func (s *Server) API() huma.API {
	return s.api
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	// RealIP trusts X-Forwarded-For and X-Real-IP. Deploy behind a proxy
	// that overwrites them or clients can spoof their rate limit key.
	s.router.Use(middleware.RealIP)
	s.router.Use(requestID)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(recoverer(s.logger))
	s.router.Use(securityHeaders)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))
	if s.opts.RateLimiter != nil {
		s.router.Use(RateLimitMiddleware(s.opts.RateLimiter, s.logger))
	}
	s.router.Use(middleware.Compress(5))

	s.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "route not found", s.logger)
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusMethodNotAllowed, response.ErrorEnvelope{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "method not allowed",
		}, s.logger)
	})
}

// setupRoutes registers every operation.
func (s *Server) setupRoutes() {
	s.registerHealthRoutes()
	s.registerCategoryRoutes()
	s.registerListingRoutes()
	s.registerTitleRoutes()
	s.registerSearchRoutes()
}

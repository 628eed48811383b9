package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health status with component checks",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// ComponentHealth describes the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status" doc:"Component status: healthy or degraded"`
	Message string `json:"message,omitempty" doc:"Additional status information"`
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status     string                     `json:"status" doc:"Overall status: healthy or degraded"`
	Version    string                     `json:"version" doc:"API version"`
	Components map[string]ComponentHealth `json:"components" doc:"Individual component statuses"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	components := make(map[string]ComponentHealth)
	overall := "healthy"

	window := s.checkProviderWindow()
	components["provider_window"] = window
	if window.Status != "healthy" {
		overall = "degraded"
	}

	return &HealthOutput{
		Body: HealthResponse{
			Status:     overall,
			Version:    APIVersion,
			Components: components,
		},
	}, nil
}

// checkProviderWindow reports how much of the outbound call budget is in use.
// A full window means new provider calls are queueing.
func (s *Server) checkProviderWindow() ComponentHealth {
	w := s.opts.ProviderWindow
	if w == nil {
		return ComponentHealth{Status: "healthy", Message: "not configured"}
	}

	used, limit := w.InFlight(), w.Limit()
	msg := fmt.Sprintf("%d of %d calls used", used, limit)
	if used >= limit {
		return ComponentHealth{Status: "degraded", Message: msg}
	}
	return ComponentHealth{Status: "healthy", Message: msg}
}

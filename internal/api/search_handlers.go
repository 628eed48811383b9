package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cinescope/cinescope-server/internal/domain"
	"github.com/cinescope/cinescope-server/internal/service"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search",
		Description: "Searches movies, shows and people, with optional filters and sort",
		Tags:        []string{"Search"},
	}, s.handleSearch)
}

// SearchInput contains parameters for searching the provider. Bounds are
// checked by the search service so errors share the validation format.
type SearchInput struct {
	Query        string  `query:"q" doc:"Search query"`
	Type         string  `query:"type" doc:"multi (default), movie, tv or person"`
	Page         int     `query:"page" default:"1" doc:"1-based page number"`
	Sort         string  `query:"sort" doc:"popularity, rating, date or title; omit to keep relevance order"`
	MinVotes     int     `query:"min_votes" doc:"Minimum vote count"`
	MinRating    float64 `query:"min_rating" doc:"Minimum average rating, 0 to 10"`
	Language     string  `query:"language" doc:"Original language, e.g. en, ko or pt-BR"`
	IncludeAdult bool    `query:"include_adult" doc:"Include adult titles"`
}

// SearchOutput wraps the search response for Huma.
type SearchOutput struct {
	Body *domain.SearchPage
}

func (s *Server) handleSearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	s.logger.Debug("Search request received",
		"query", input.Query,
		"type", input.Type,
		"page", input.Page,
		"language", input.Language,
		"request_id", getRequestID(ctx),
	)

	result, err := s.services.Search.Search(ctx, service.SearchOptions{
		Query:        input.Query,
		Type:         input.Type,
		Page:         input.Page,
		Sort:         input.Sort,
		MinVotes:     input.MinVotes,
		MinRating:    input.MinRating,
		Language:     input.Language,
		IncludeAdult: input.IncludeAdult,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Search completed",
		"query", result.Query,
		"results", len(result.Results),
		"total", result.TotalResults,
	)

	return &SearchOutput{Body: result}, nil
}

package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cinescope/cinescope-server/internal/domain"
)

// TitleInput identifies a movie or show.
type TitleInput struct {
	ID int64 `path:"id" minimum:"1" doc:"TMDB id"`
}

// TitleOutput wraps a detail page for Huma.
type TitleOutput struct {
	Body *domain.TitleDetail
}

func (s *Server) registerTitleRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getMovie",
		Method:      http.MethodGet,
		Path:        "/api/v1/movies/{id}",
		Summary:     "Movie details",
		Description: "Returns a movie with cast, directors, trailer, recommendations and watch providers",
		Tags:        []string{"Movies"},
	}, s.handleGetMovie)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTV",
		Method:      http.MethodGet,
		Path:        "/api/v1/tv/{id}",
		Summary:     "TV details",
		Description: "Returns a show with cast, creators, trailer, recommendations and watch providers",
		Tags:        []string{"TV"},
	}, s.handleGetTV)
}

func (s *Server) handleGetMovie(ctx context.Context, input *TitleInput) (*TitleOutput, error) {
	detail, err := s.services.Title.Movie(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &TitleOutput{Body: detail}, nil
}

func (s *Server) handleGetTV(ctx context.Context, input *TitleInput) (*TitleOutput, error) {
	detail, err := s.services.Title.TV(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &TitleOutput{Body: detail}, nil
}

package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cinescope/cinescope-server/internal/domain"
	"github.com/cinescope/cinescope-server/internal/service"
)

// ListInput selects a general provider list.
type ListInput struct {
	List string `path:"list" doc:"List name, e.g. popular or top-rated"`
	PageInput
}

func (s *Server) registerListingRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getMovieList",
		Method:      http.MethodGet,
		Path:        "/api/v1/movies/lists/{list}",
		Summary:     "Movie list",
		Description: "Returns one page of a movie list: " + strings.Join(service.Lists(domain.MediaMovie), ", "),
		Tags:        []string{"Movies"},
	}, s.listHandler(domain.MediaMovie))

	huma.Register(s.api, huma.Operation{
		OperationID: "getTVList",
		Method:      http.MethodGet,
		Path:        "/api/v1/tv/lists/{list}",
		Summary:     "TV list",
		Description: "Returns one page of a TV list: " + strings.Join(service.Lists(domain.MediaTV), ", "),
		Tags:        []string{"TV"},
	}, s.listHandler(domain.MediaTV))
}

func (s *Server) listHandler(media domain.MediaType) func(context.Context, *ListInput) (*PageOutput, error) {
	return func(ctx context.Context, input *ListInput) (*PageOutput, error) {
		res, err := s.services.Listing.List(ctx, media, input.List, input.Page)
		if err != nil {
			return nil, err
		}
		return newPageOutput(res), nil
	}
}

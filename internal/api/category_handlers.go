package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cinescope/cinescope-server/internal/catalog"
	"github.com/cinescope/cinescope-server/internal/domain"
)

// PageInput is the optional 1-based page of a paginated listing.
type PageInput struct {
	Page int `query:"page" default:"1" minimum:"1" maximum:"500" doc:"1-based page number"`
}

// CategoryInput selects one entry of the category table.
type CategoryInput struct {
	Type string `path:"type" doc:"Category group: mood, awards, studios, networks or genres"`
	Key  string `path:"key" doc:"Category key, e.g. feel-good or oscar-winners"`
	PageInput
}

// CategoryEntry describes one selectable category.
type CategoryEntry struct {
	Key       string           `json:"key" doc:"Category key"`
	Label     string           `json:"label" doc:"Display label"`
	Path      string           `json:"path" doc:"Path to request this category"`
	MediaType domain.MediaType `json:"media_type" doc:"movie or tv"`
}

// CategoryGroup lists the categories of one group.
type CategoryGroup struct {
	Type       string          `json:"type" doc:"Category group"`
	Categories []CategoryEntry `json:"categories"`
}

// CategoryIndexOutput wraps the category index for Huma.
type CategoryIndexOutput struct {
	Body []CategoryGroup
}

func (s *Server) registerCategoryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listCategories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Description: "Returns every supported category grouped by type",
		Tags:        []string{"Categories"},
	}, s.handleListCategories)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCategory",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/{type}/{key}",
		Summary:     "Get category",
		Description: "Returns one page of a mood, awards, studio, network or genre category",
		Tags:        []string{"Categories"},
	}, s.handleGetCategory)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTrendingMovies",
		Method:      http.MethodGet,
		Path:        "/api/v1/movies/trending",
		Summary:     "Trending movies",
		Description: "Returns this week's trending movies merged into one ranked page",
		Tags:        []string{"Movies"},
	}, s.handleTrendingMovies)

	huma.Register(s.api, huma.Operation{
		OperationID: "getAnticipatedMovies",
		Method:      http.MethodGet,
		Path:        "/api/v1/movies/anticipated",
		Summary:     "Anticipated movies",
		Description: "Returns upcoming theatrical releases, soonest first",
		Tags:        []string{"Movies"},
	}, s.handleAnticipatedMovies)

	huma.Register(s.api, huma.Operation{
		OperationID: "getStreamingNow",
		Method:      http.MethodGet,
		Path:        "/api/v1/movies/streaming-now",
		Summary:     "New on streaming",
		Description: "Returns movies that recently arrived on subscription streaming",
		Tags:        []string{"Movies"},
	}, s.handleStreamingNow)

	huma.Register(s.api, huma.Operation{
		OperationID: "getUpcomingTV",
		Method:      http.MethodGet,
		Path:        "/api/v1/tv/upcoming",
		Summary:     "Upcoming TV",
		Description: "Returns shows first airing in the next six months",
		Tags:        []string{"TV"},
	}, s.handleUpcomingTV)

	huma.Register(s.api, huma.Operation{
		OperationID: "getUpcoming",
		Method:      http.MethodGet,
		Path:        "/api/v1/upcoming",
		Summary:     "Upcoming movies and TV",
		Description: "Returns upcoming movies and shows merged by date",
		Tags:        []string{"Categories"},
	}, s.handleUpcoming)
}

func (s *Server) handleListCategories(_ context.Context, _ *struct{}) (*CategoryIndexOutput, error) {
	types := catalog.Types()
	groups := make([]CategoryGroup, 0, len(types))
	for _, t := range types {
		specs := catalog.All(t)
		entries := make([]CategoryEntry, len(specs))
		for i, spec := range specs {
			entries[i] = CategoryEntry{
				Key:       spec.Key,
				Label:     spec.Label,
				Path:      "/api/v1/categories/" + spec.Name(),
				MediaType: spec.Media(),
			}
		}
		groups = append(groups, CategoryGroup{Type: string(t), Categories: entries})
	}
	return &CategoryIndexOutput{Body: groups}, nil
}

func (s *Server) handleGetCategory(ctx context.Context, input *CategoryInput) (*PageOutput, error) {
	res, err := s.services.Category.Category(ctx, input.Type, input.Key, input.Page)
	if err != nil {
		return nil, err
	}
	return newPageOutput(res), nil
}

func (s *Server) handleTrendingMovies(ctx context.Context, _ *struct{}) (*PageOutput, error) {
	res, err := s.services.Category.TrendingMovies(ctx)
	if err != nil {
		return nil, err
	}
	return newPageOutput(res), nil
}

func (s *Server) handleAnticipatedMovies(ctx context.Context, input *PageInput) (*PageOutput, error) {
	res, err := s.services.Category.AnticipatedMovies(ctx, input.Page)
	if err != nil {
		return nil, err
	}
	return newPageOutput(res), nil
}

func (s *Server) handleStreamingNow(ctx context.Context, _ *struct{}) (*PageOutput, error) {
	res, err := s.services.Category.StreamingNow(ctx)
	if err != nil {
		return nil, err
	}
	return newPageOutput(res), nil
}

func (s *Server) handleUpcomingTV(ctx context.Context, input *PageInput) (*PageOutput, error) {
	res, err := s.services.Category.UpcomingTV(ctx, input.Page)
	if err != nil {
		return nil, err
	}
	return newPageOutput(res), nil
}

func (s *Server) handleUpcoming(ctx context.Context, input *PageInput) (*PageOutput, error) {
	res, err := s.services.Category.Upcoming(ctx, input.Page)
	if err != nil {
		return nil, err
	}
	return newPageOutput(res), nil
}

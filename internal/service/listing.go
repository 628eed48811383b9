package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/cinescope/cinescope-server/internal/domain"
	domainerrors "github.com/cinescope/cinescope-server/internal/errors"
)

// listEndpoints maps public list slugs to provider list names per media type.
var listEndpoints = map[domain.MediaType]map[string]string{
	domain.MediaMovie: {
		"popular":     "popular",
		"top-rated":   "top_rated",
		"now-playing": "now_playing",
	},
	domain.MediaTV: {
		"popular":      "popular",
		"top-rated":    "top_rated",
		"on-the-air":   "on_the_air",
		"airing-today": "airing_today",
	},
}

// ListingService serves the provider's general paginated lists.
type ListingService struct {
	provider ContentProvider
	logger   *slog.Logger
}

// NewListingService creates a new listing service.
func NewListingService(provider ContentProvider, logger *slog.Logger) *ListingService {
	return &ListingService{
		provider: provider,
		logger:   logger,
	}
}

// Lists returns the list slugs available for media, sorted.
func Lists(media domain.MediaType) []string {
	names := make([]string, 0, len(listEndpoints[media]))
	for name := range listEndpoints[media] {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// List returns one page of a general list such as movies/lists/popular.
func (s *ListingService) List(ctx context.Context, media domain.MediaType, list string, page int) (*CategoryResult, error) {
	endpoint, ok := listEndpoints[media][list]
	if !ok {
		return nil, domainerrors.UnsupportedCategoryf("unsupported %s list: %q", media, list)
	}

	category := listCategory(media, list)
	p, err := s.provider.List(ctx, media, endpoint, page)
	if err != nil {
		return nil, &CategoryFetchError{Category: category, Err: err}
	}

	return &CategoryResult{
		Category:  category,
		MediaType: media,
		Page:      plainPage(p, media),
	}, nil
}

func listCategory(media domain.MediaType, list string) string {
	prefix := "movies"
	if media == domain.MediaTV {
		prefix = "tv"
	}
	return prefix + "/lists/" + list
}

package service

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/cinescope/cinescope-server/internal/domain"
	domainerrors "github.com/cinescope/cinescope-server/internal/errors"
	"github.com/cinescope/cinescope-server/internal/tmdb"
	"github.com/cinescope/cinescope-server/internal/validation"
)

// Sort orders accepted by Search.
const (
	SortPopularity = "popularity"
	SortRating     = "rating"
	SortDate       = "date"
	SortTitle      = "title"
)

// SearchOptions are the validated search parameters.
type SearchOptions struct {
	Query        string  `json:"query" validate:"required,min=1,max=100"`
	Type         string  `json:"type" validate:"omitempty,oneof=multi movie tv person"`
	Page         int     `json:"page" validate:"omitempty,min=1,max=500"`
	Sort         string  `json:"sort" validate:"omitempty,oneof=popularity rating date title"`
	MinVotes     int     `json:"min_votes" validate:"min=0"`
	MinRating    float64 `json:"min_rating" validate:"min=0,max=10"`
	Language     string  `json:"language" validate:"omitempty,max=35"`
	IncludeAdult bool    `json:"include_adult"`
}

// SearchService searches the provider and formats hits into one shape.
type SearchService struct {
	provider  ContentProvider
	validator *validation.Validator
	logger    *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(provider ContentProvider, validator *validation.Validator, logger *slog.Logger) *SearchService {
	return &SearchService{
		provider:  provider,
		validator: validator,
		logger:    logger,
	}
}

// Search runs a query, filters the page of hits and optionally sorts it.
// Without a sort the provider's relevance order is kept.
func (s *SearchService) Search(ctx context.Context, opts SearchOptions) (*domain.SearchPage, error) {
	opts.Query = strings.TrimSpace(opts.Query)
	if err := s.validator.Validate(opts); err != nil {
		return nil, err
	}
	if opts.Language != "" {
		code, ok := languageCode(opts.Language)
		if !ok {
			return nil, domainerrors.ValidationWithDetails("validation failed",
				map[string]string{"language": "is not a recognized language"})
		}
		opts.Language = code
	}
	if opts.Type == "" {
		opts.Type = string(tmdb.SearchMulti)
	}
	if opts.Page == 0 {
		opts.Page = 1
	}

	s.logger.Debug("searching provider",
		"query", opts.Query,
		"type", opts.Type,
		"page", opts.Page,
	)

	p, err := s.provider.Search(ctx, tmdb.SearchKind(opts.Type), opts.Query, opts.Page, opts.IncludeAdult)
	if err != nil {
		return nil, domainerrors.Upstream("search failed", err)
	}

	items := make([]domain.SearchItem, 0, len(p.Results))
	for _, it := range p.Results {
		item, ok := toSearchItem(it, opts.Type)
		if !ok || !matchesFilters(item, opts) {
			continue
		}
		items = append(items, item)
	}
	sortSearchItems(items, opts.Sort)

	return &domain.SearchPage{
		Query:        opts.Query,
		Results:      items,
		TotalResults: p.TotalResults,
		TotalPages:   p.TotalPages,
		Page:         p.Page,
	}, nil
}

// toSearchItem reshapes a hit. Multi-search hits carry their own media type;
// typed searches take it from the endpoint.
func toSearchItem(it tmdb.Item, kind string) (domain.SearchItem, bool) {
	media := domain.MediaType(it.MediaType)
	if media == "" && kind != string(tmdb.SearchMulti) {
		media = domain.MediaType(kind)
	}
	if !media.Valid() {
		return domain.SearchItem{}, false
	}

	item := domain.SearchItem{
		ID:          it.ID,
		MediaType:   media,
		Overview:    it.Overview,
		Popularity:  it.Popularity,
		VoteAverage: it.VoteAverage,
		VoteCount:   it.VoteCount,
		Adult:       it.Adult,
		Language:    it.OriginalLanguage,
	}
	switch media {
	case domain.MediaMovie:
		item.Title, item.Date, item.PosterPath = it.Title, it.ReleaseDate, it.PosterPath
	case domain.MediaTV:
		item.Title, item.Date, item.PosterPath = it.Name, it.FirstAirDate, it.PosterPath
	case domain.MediaPerson:
		item.Title, item.PosterPath, item.KnownFor = it.Name, it.ProfilePath, it.KnownForDepartment
	}
	return item, true
}

// matchesFilters applies the independent filter predicates.
func matchesFilters(item domain.SearchItem, opts SearchOptions) bool {
	if item.Adult && !opts.IncludeAdult {
		return false
	}
	if item.VoteCount < opts.MinVotes {
		return false
	}
	if item.VoteAverage < opts.MinRating {
		return false
	}
	// People have no original language and are kept.
	if opts.Language != "" && item.MediaType != domain.MediaPerson && item.Language != opts.Language {
		return false
	}
	return true
}

// languageCode reduces a BCP 47 tag or ISO 639 code ("en-US", "eng", "pt_BR")
// to the two-letter code the provider reports as original_language.
func languageCode(raw string) (string, bool) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(raw), "_", "-"))
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	return base.String(), true
}

func sortSearchItems(items []domain.SearchItem, order string) {
	var compare func(a, b domain.SearchItem) int
	switch order {
	case SortPopularity:
		compare = func(a, b domain.SearchItem) int { return cmp.Compare(b.Popularity, a.Popularity) }
	case SortRating:
		compare = func(a, b domain.SearchItem) int { return cmp.Compare(b.VoteAverage, a.VoteAverage) }
	case SortDate:
		// Newest first, undated last.
		compare = func(a, b domain.SearchItem) int {
			switch {
			case a.Date == "" && b.Date == "":
				return 0
			case a.Date == "":
				return 1
			case b.Date == "":
				return -1
			}
			return strings.Compare(b.Date, a.Date)
		}
	case SortTitle:
		compare = func(a, b domain.SearchItem) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	default:
		return
	}
	slices.SortStableFunc(items, compare)
}

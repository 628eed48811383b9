package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/cinescope/cinescope-server/internal/catalog"
	"github.com/cinescope/cinescope-server/internal/domain"
	"github.com/cinescope/cinescope-server/internal/fanout"
	"github.com/cinescope/cinescope-server/internal/tmdb"
)

// Category names reported for the derived categories.
const (
	CategoryTrending     = "movies/trending"
	CategoryAnticipated  = "movies/anticipated"
	CategoryStreamingNow = "movies/streaming-now"
	CategoryUpcomingTV   = "tv/upcoming"
	CategoryUpcoming     = "upcoming"
)

const (
	trendingPages   = 5
	upcomingTVMonth = 6
)

// CategoryFetchError wraps a failed required provider call.
type CategoryFetchError struct {
	Category string
	Err      error
}

func (e *CategoryFetchError) Error() string {
	return fmt.Sprintf("fetch category %s: %v", e.Category, e.Err)
}

func (e *CategoryFetchError) Unwrap() error {
	return e.Err
}

// CategoryResult is one page of a category. MediaType is empty for mixed results.
type CategoryResult struct {
	Category  string
	MediaType domain.MediaType
	Page      *domain.Page
}

// CategoryService aggregates, ranks and annotates category listings.
type CategoryService struct {
	provider ContentProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewCategoryService creates a new category service.
func NewCategoryService(provider ContentProvider, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *CategoryService) today() time.Time {
	return startOfDay(s.now())
}

// Category serves one of the mapped categories (mood, awards, studios,
// networks, genres). Provider results pass through unmodified.
func (s *CategoryService) Category(ctx context.Context, categoryType, categoryKey string, page int) (*CategoryResult, error) {
	spec, err := catalog.Resolve(categoryType, categoryKey)
	if err != nil {
		return nil, err
	}

	media := spec.Media()
	p, err := s.provider.Discover(ctx, media, spec.ProviderParams(), page)
	if err != nil {
		return nil, &CategoryFetchError{Category: spec.Name(), Err: err}
	}

	return &CategoryResult{
		Category:  spec.Name(),
		MediaType: media,
		Page:      plainPage(p, media),
	}, nil
}

// Mood serves mood/<key>.
func (s *CategoryService) Mood(ctx context.Context, key string, page int) (*CategoryResult, error) {
	return s.Category(ctx, string(catalog.Mood), key, page)
}

// Awards serves awards/<key>.
func (s *CategoryService) Awards(ctx context.Context, key string, page int) (*CategoryResult, error) {
	return s.Category(ctx, string(catalog.Awards), key, page)
}

// Studios serves studios/<key>.
func (s *CategoryService) Studios(ctx context.Context, key string, page int) (*CategoryResult, error) {
	return s.Category(ctx, string(catalog.Studios), key, page)
}

// Networks serves networks/<key>.
func (s *CategoryService) Networks(ctx context.Context, key string, page int) (*CategoryResult, error) {
	return s.Category(ctx, string(catalog.Networks), key, page)
}

// Genres serves genres/<key>.
func (s *CategoryService) Genres(ctx context.Context, key string, page int) (*CategoryResult, error) {
	return s.Category(ctx, string(catalog.Genres), key, page)
}

// TrendingMovies merges several pages of the weekly trending list into one
// ranked page. Failed pages contribute nothing.
func (s *CategoryService) TrendingMovies(ctx context.Context) (*CategoryResult, error) {
	pages := make([]int, trendingPages)
	for i := range pages {
		pages[i] = i + 1
	}

	results := fanout.Map(ctx, pages, trendingPages, func(ctx context.Context, page int) ([]domain.ContentItem, error) {
		p, err := s.provider.Trending(ctx, domain.MediaMovie, tmdb.WindowWeek, page)
		if err != nil {
			return nil, err
		}
		return toContentItems(p.Results, domain.MediaMovie), nil
	})
	if failed := fanout.Failures(results); failed > 0 {
		s.logger.Debug("trending pages failed",
			"failed", failed,
			"pages", len(pages),
		)
	}

	items := mergeTrending(fanout.Successes(results))
	ranked := rankTrending(items, s.today())
	s.enrichTaglines(ctx, ranked)

	return &CategoryResult{
		Category:  CategoryTrending,
		MediaType: domain.MediaMovie,
		Page:      singlePage(ranked),
	}, nil
}

// mergeTrending concatenates pages, de-duplicates and sorts by popularity.
func mergeTrending(pages [][]domain.ContentItem) []domain.ContentItem {
	var all []domain.ContentItem
	for _, p := range pages {
		all = append(all, p...)
	}
	items := dedupe(all)
	slices.SortStableFunc(items, func(a, b domain.ContentItem) int {
		return cmp.Compare(b.Popularity, a.Popularity)
	})
	return items
}

// AnticipatedMovies lists upcoming theatrical releases dated today or later,
// soonest first. total_results reflects the filtered count.
func (s *CategoryService) AnticipatedMovies(ctx context.Context, page int) (*CategoryResult, error) {
	res, err := s.anticipated(ctx, page)
	if err != nil {
		return nil, err
	}
	s.enrichTaglines(ctx, res.Page.Results)
	return res, nil
}

func (s *CategoryService) anticipated(ctx context.Context, page int) (*CategoryResult, error) {
	p, err := s.provider.Upcoming(ctx, page)
	if err != nil {
		return nil, &CategoryFetchError{Category: CategoryAnticipated, Err: err}
	}

	today := s.today()
	items := make([]domain.ContentItem, 0, len(p.Results))
	for _, it := range toContentItems(p.Results, domain.MediaMovie) {
		date, ok := it.ParsedDate()
		if !ok || date.Before(today) {
			continue
		}
		items = append(items, it)
	}
	slices.SortStableFunc(items, compareDates)

	results := make([]domain.RankedResult, len(items))
	for i, it := range items {
		results[i] = domain.RankedResult{Item: it, Annotations: annotateRelease(it, today)}
	}

	return &CategoryResult{
		Category:  CategoryAnticipated,
		MediaType: domain.MediaMovie,
		Page: &domain.Page{
			Results:      results,
			TotalResults: len(results),
			TotalPages:   p.TotalPages,
			Page:         p.Page,
		},
	}, nil
}

// UpcomingTV lists shows first airing between today and six months from today.
func (s *CategoryService) UpcomingTV(ctx context.Context, page int) (*CategoryResult, error) {
	today := s.today()
	params := map[string]string{
		"first_air_date.gte": today.Format(domain.DateLayout),
		"first_air_date.lte": today.AddDate(0, upcomingTVMonth, 0).Format(domain.DateLayout),
		"sort_by":            "first_air_date.asc",
	}

	p, err := s.provider.Discover(ctx, domain.MediaTV, params, page)
	if err != nil {
		return nil, &CategoryFetchError{Category: CategoryUpcomingTV, Err: err}
	}

	items := toContentItems(p.Results, domain.MediaTV)
	results := make([]domain.RankedResult, len(items))
	for i, it := range items {
		results[i] = domain.RankedResult{Item: it, Annotations: annotateRelease(it, today)}
	}

	return &CategoryResult{
		Category:  CategoryUpcomingTV,
		MediaType: domain.MediaTV,
		Page: &domain.Page{
			Results:      results,
			TotalResults: p.TotalResults,
			TotalPages:   p.TotalPages,
			Page:         p.Page,
		},
	}, nil
}

// Upcoming merges upcoming movies and shows sorted by date. Both fetches must
// succeed.
func (s *CategoryService) Upcoming(ctx context.Context, page int) (*CategoryResult, error) {
	var movies, shows *CategoryResult
	err := fanout.All(ctx,
		func(ctx context.Context) error {
			var err error
			movies, err = s.anticipated(ctx, page)
			return err
		},
		func(ctx context.Context) error {
			var err error
			shows, err = s.UpcomingTV(ctx, page)
			return err
		},
	)
	if err != nil {
		return nil, &CategoryFetchError{Category: CategoryUpcoming, Err: err}
	}

	results := make([]domain.RankedResult, 0, len(movies.Page.Results)+len(shows.Page.Results))
	results = append(results, movies.Page.Results...)
	results = append(results, shows.Page.Results...)
	slices.SortStableFunc(results, func(a, b domain.RankedResult) int {
		return compareDates(a.Item, b.Item)
	})

	return &CategoryResult{
		Category: CategoryUpcoming,
		Page: &domain.Page{
			Results:      results,
			TotalResults: movies.Page.TotalResults + shows.Page.TotalResults,
			TotalPages:   max(movies.Page.TotalPages, shows.Page.TotalPages),
			Page:         max(page, 1),
		},
	}, nil
}

// singlePage wraps a consolidated result set, which always reports page 1.
func singlePage(results []domain.RankedResult) *domain.Page {
	if results == nil {
		results = []domain.RankedResult{}
	}
	return &domain.Page{
		Results:      results,
		TotalResults: len(results),
		TotalPages:   1,
		Page:         1,
	}
}

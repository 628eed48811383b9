package service

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/cinescope/cinescope-server/internal/domain"
	domainerrors "github.com/cinescope/cinescope-server/internal/errors"
	"github.com/cinescope/cinescope-server/internal/fanout"
	"github.com/cinescope/cinescope-server/internal/tmdb"
)

const (
	maxCast            = 10
	maxRecommendations = 10
	youtubeWatchURL    = "https://www.youtube.com/watch?v="
)

// TitleService assembles movie and show detail pages.
type TitleService struct {
	provider ContentProvider
	logger   *slog.Logger
}

// NewTitleService creates a new title service.
func NewTitleService(provider ContentProvider, logger *slog.Logger) *TitleService {
	return &TitleService{
		provider: provider,
		logger:   logger,
	}
}

// Movie returns the detail page of a movie.
func (s *TitleService) Movie(ctx context.Context, id int64) (*domain.TitleDetail, error) {
	return s.title(ctx, domain.MediaMovie, id)
}

// TV returns the detail page of a show.
func (s *TitleService) TV(ctx context.Context, id int64) (*domain.TitleDetail, error) {
	return s.title(ctx, domain.MediaTV, id)
}

// title fetches details and credits (required) alongside videos,
// recommendations and watch providers (optional, empty on failure).
func (s *TitleService) title(ctx context.Context, media domain.MediaType, id int64) (*domain.TitleDetail, error) {
	if id <= 0 {
		return nil, domainerrors.Validationf("invalid %s id: %d", media, id)
	}

	var (
		details   *tmdb.Details
		credits   *tmdb.Credits
		videos    *tmdb.Videos
		recs      *tmdb.Page
		providers *tmdb.WatchProviders
		wg        sync.WaitGroup
	)

	wg.Go(func() {
		v, err := s.provider.Videos(ctx, media, id)
		if err != nil {
			s.logger.Debug("videos unavailable", "media_type", media, "id", id, "error", err)
			return
		}
		videos = v
	})
	wg.Go(func() {
		r, err := s.provider.Recommendations(ctx, media, id, 1)
		if err != nil {
			s.logger.Debug("recommendations unavailable", "media_type", media, "id", id, "error", err)
			return
		}
		recs = r
	})
	wg.Go(func() {
		p, err := s.provider.WatchProviders(ctx, media, id)
		if err != nil {
			s.logger.Debug("watch providers unavailable", "media_type", media, "id", id, "error", err)
			return
		}
		providers = p
	})

	err := fanout.All(ctx,
		func(ctx context.Context) error {
			var err error
			details, err = s.provider.Details(ctx, media, id)
			return err
		},
		func(ctx context.Context) error {
			var err error
			credits, err = s.provider.Credits(ctx, media, id)
			return err
		},
	)
	wg.Wait()

	if err != nil {
		if domainerrors.Is(err, tmdb.ErrNotFound) {
			return nil, domainerrors.NotFoundf("%s %d not found", media, id)
		}
		return nil, domainerrors.Upstream("failed to fetch "+string(media)+" details", err)
	}

	detail := buildDetail(media, details)
	detail.Cast = topCast(credits.Cast)
	detail.Directors = directors(media, details, credits.Crew)
	detail.Trailer = firstTrailer(videos)
	detail.Recommendations = recommendations(recs, media)
	detail.WatchProviders = availability(providers, s.provider.Region())

	return detail, nil
}

func buildDetail(media domain.MediaType, d *tmdb.Details) *domain.TitleDetail {
	detail := &domain.TitleDetail{
		ID:               d.ID,
		MediaType:        media,
		Tagline:          d.Tagline,
		Overview:         d.Overview,
		Status:           d.Status,
		Runtime:          d.Runtime,
		Popularity:       d.Popularity,
		VoteAverage:      d.VoteAverage,
		VoteCount:        d.VoteCount,
		PosterPath:       d.PosterPath,
		BackdropPath:     d.BackdropPath,
		Homepage:         d.Homepage,
		IMDbID:           d.IMDbID,
		Budget:           d.Budget,
		Revenue:          d.Revenue,
		NumberOfSeasons:  d.NumberOfSeasons,
		NumberOfEpisodes: d.NumberOfEpisodes,
		Genres:           make([]domain.Genre, len(d.Genres)),
		Companies:        companies(d.Companies),
	}

	if media == domain.MediaTV {
		detail.Title, detail.OriginalTitle, detail.ReleaseDate = d.Name, d.OriginalName, d.FirstAirDate
		detail.Networks = companies(d.Networks)
		if detail.Runtime == 0 && len(d.EpisodeRunTime) > 0 {
			detail.Runtime = d.EpisodeRunTime[0]
		}
	} else {
		detail.Title, detail.OriginalTitle, detail.ReleaseDate = d.Title, d.OriginalTitle, d.ReleaseDate
	}
	detail.FormattedReleaseDate = FormatReleaseDate(detail.ReleaseDate)

	for i, g := range d.Genres {
		detail.Genres[i] = domain.Genre{ID: g.ID, Name: g.Name}
	}
	return detail
}

func companies(in []tmdb.Company) []domain.Company {
	out := make([]domain.Company, len(in))
	for i, c := range in {
		out[i] = domain.Company{ID: c.ID, Name: c.Name, LogoPath: c.LogoPath, OriginCountry: c.OriginCountry}
	}
	return out
}

func topCast(cast []tmdb.CastMember) []domain.CastMember {
	sorted := slices.Clone(cast)
	slices.SortStableFunc(sorted, func(a, b tmdb.CastMember) int {
		return cmp.Compare(a.Order, b.Order)
	})
	if len(sorted) > maxCast {
		sorted = sorted[:maxCast]
	}

	out := make([]domain.CastMember, len(sorted))
	for i, c := range sorted {
		out[i] = domain.CastMember{ID: c.ID, Name: c.Name, Character: c.Character, ProfilePath: c.ProfilePath, Order: c.Order}
	}
	return out
}

// directors lists a movie's directors, or a show's creators when it has any.
func directors(media domain.MediaType, d *tmdb.Details, crew []tmdb.CrewMember) []domain.CrewMember {
	out := []domain.CrewMember{}
	seen := make(map[int64]struct{})

	if media == domain.MediaTV {
		for _, c := range d.CreatedBy {
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}
			out = append(out, domain.CrewMember{ID: c.ID, Name: c.Name, Job: "Creator", ProfilePath: c.ProfilePath})
		}
		if len(out) > 0 {
			return out
		}
	}

	for _, c := range crew {
		if c.Job != "Director" {
			continue
		}
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, domain.CrewMember{ID: c.ID, Name: c.Name, Job: c.Job, Department: c.Department, ProfilePath: c.ProfilePath})
	}
	return out
}

// firstTrailer picks the first YouTube trailer, preferring official uploads.
func firstTrailer(videos *tmdb.Videos) *domain.Trailer {
	if videos == nil {
		return nil
	}

	var fallback *tmdb.Video
	for i := range videos.Results {
		v := &videos.Results[i]
		if v.Site != "YouTube" || v.Type != "Trailer" {
			continue
		}
		if v.Official {
			return toTrailer(v)
		}
		if fallback == nil {
			fallback = v
		}
	}
	if fallback == nil {
		return nil
	}
	return toTrailer(fallback)
}

func toTrailer(v *tmdb.Video) *domain.Trailer {
	return &domain.Trailer{Key: v.Key, Name: v.Name, Site: v.Site, URL: youtubeWatchURL + v.Key}
}

func recommendations(p *tmdb.Page, media domain.MediaType) []domain.ContentItem {
	if p == nil {
		return []domain.ContentItem{}
	}
	items := p.Results
	if len(items) > maxRecommendations {
		items = items[:maxRecommendations]
	}
	return toContentItems(items, media)
}

// availability reports where the title streams in the reference region.
func availability(w *tmdb.WatchProviders, region string) *domain.WatchAvailability {
	rp, ok := w.Region(region)
	if !ok {
		return nil
	}
	return &domain.WatchAvailability{
		Region:       region,
		Link:         rp.Link,
		Subscription: streamingProviders(rp.Flatrate),
		Ads:          streamingProviders(rp.Ads),
		Free:         streamingProviders(rp.Free),
		Rent:         streamingProviders(rp.Rent),
		Buy:          streamingProviders(rp.Buy),
	}
}

func streamingProviders(in []tmdb.Provider) []domain.StreamingProvider {
	out := make([]domain.StreamingProvider, len(in))
	for i, p := range in {
		out[i] = domain.StreamingProvider{ID: p.ProviderID, Name: p.ProviderName, LogoPath: p.LogoPath}
	}
	return out
}

// Package service implements the category aggregation, title detail and search
// logic on top of the content provider.
package service

import (
	"context"

	"github.com/cinescope/cinescope-server/internal/domain"
	"github.com/cinescope/cinescope-server/internal/tmdb"
)

// ContentProvider is the provider capability the services consume.
// *tmdb.Client implements it.
type ContentProvider interface {
	Discover(ctx context.Context, media domain.MediaType, params map[string]string, page int) (*tmdb.Page, error)
	Trending(ctx context.Context, media domain.MediaType, window tmdb.TimeWindow, page int) (*tmdb.Page, error)
	Upcoming(ctx context.Context, page int) (*tmdb.Page, error)
	List(ctx context.Context, media domain.MediaType, list string, page int) (*tmdb.Page, error)
	WatchProviders(ctx context.Context, media domain.MediaType, id int64) (*tmdb.WatchProviders, error)
	Details(ctx context.Context, media domain.MediaType, id int64, appends ...string) (*tmdb.Details, error)
	Credits(ctx context.Context, media domain.MediaType, id int64) (*tmdb.Credits, error)
	Videos(ctx context.Context, media domain.MediaType, id int64) (*tmdb.Videos, error)
	Recommendations(ctx context.Context, media domain.MediaType, id int64, page int) (*tmdb.Page, error)
	Search(ctx context.Context, kind tmdb.SearchKind, query string, page int, includeAdult bool) (*tmdb.Page, error)
	Region() string
}

var _ ContentProvider = (*tmdb.Client)(nil)

// toContentItem normalizes a provider record. fallback is used when the
// record does not carry its own media_type.
func toContentItem(it tmdb.Item, fallback domain.MediaType) domain.ContentItem {
	media := domain.MediaType(it.MediaType)
	if media != domain.MediaMovie && media != domain.MediaTV {
		media = fallback
	}

	item := domain.ContentItem{
		ID:               it.ID,
		MediaType:        media,
		Overview:         it.Overview,
		Popularity:       it.Popularity,
		VoteAverage:      it.VoteAverage,
		VoteCount:        it.VoteCount,
		GenreIDs:         it.GenreIDs,
		PosterPath:       it.PosterPath,
		BackdropPath:     it.BackdropPath,
		OriginalLanguage: it.OriginalLanguage,
		Adult:            it.Adult,
	}
	if media == domain.MediaTV {
		item.Title, item.OriginalTitle, item.Date = it.Name, it.OriginalName, it.FirstAirDate
	} else {
		item.Title, item.OriginalTitle, item.Date = it.Title, it.OriginalTitle, it.ReleaseDate
	}
	return item
}

func toContentItems(items []tmdb.Item, fallback domain.MediaType) []domain.ContentItem {
	out := make([]domain.ContentItem, len(items))
	for i, it := range items {
		out[i] = toContentItem(it, fallback)
	}
	return out
}

// plainPage converts a provider page without annotating it.
func plainPage(p *tmdb.Page, media domain.MediaType) *domain.Page {
	return domain.PlainPage(toContentItems(p.Results, media), p.Page, p.TotalPages, p.TotalResults)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/cinescope/cinescope-server/internal/domain"
	"github.com/cinescope/cinescope-server/internal/tmdb"
)

var errNotStubbed = errors.New("not stubbed")

// fakeProvider is an in-memory ContentProvider. Unset hooks fail with errNotStubbed.
type fakeProvider struct {
	mu    sync.Mutex
	calls map[string]int

	discover        func(media domain.MediaType, params map[string]string, page int) (*tmdb.Page, error)
	trending        func(page int) (*tmdb.Page, error)
	upcoming        func(page int) (*tmdb.Page, error)
	list            func(media domain.MediaType, list string, page int) (*tmdb.Page, error)
	watchProviders  func(media domain.MediaType, id int64) (*tmdb.WatchProviders, error)
	details         func(media domain.MediaType, id int64, appends []string) (*tmdb.Details, error)
	credits         func(media domain.MediaType, id int64) (*tmdb.Credits, error)
	videos          func(media domain.MediaType, id int64) (*tmdb.Videos, error)
	recommendations func(media domain.MediaType, id int64) (*tmdb.Page, error)
	search          func(kind tmdb.SearchKind, query string, page int, includeAdult bool) (*tmdb.Page, error)
}

func (f *fakeProvider) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
}

func (f *fakeProvider) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeProvider) Discover(_ context.Context, media domain.MediaType, params map[string]string, page int) (*tmdb.Page, error) {
	f.record("discover")
	if f.discover == nil {
		return nil, errNotStubbed
	}
	return f.discover(media, params, page)
}

func (f *fakeProvider) Trending(_ context.Context, _ domain.MediaType, _ tmdb.TimeWindow, page int) (*tmdb.Page, error) {
	f.record("trending")
	if f.trending == nil {
		return nil, errNotStubbed
	}
	return f.trending(page)
}

func (f *fakeProvider) Upcoming(_ context.Context, page int) (*tmdb.Page, error) {
	f.record("upcoming")
	if f.upcoming == nil {
		return nil, errNotStubbed
	}
	return f.upcoming(page)
}

func (f *fakeProvider) List(_ context.Context, media domain.MediaType, list string, page int) (*tmdb.Page, error) {
	f.record("list")
	if f.list == nil {
		return nil, errNotStubbed
	}
	return f.list(media, list, page)
}

func (f *fakeProvider) WatchProviders(_ context.Context, media domain.MediaType, id int64) (*tmdb.WatchProviders, error) {
	f.record("watchProviders")
	if f.watchProviders == nil {
		return nil, errNotStubbed
	}
	return f.watchProviders(media, id)
}

func (f *fakeProvider) Details(_ context.Context, media domain.MediaType, id int64, appends ...string) (*tmdb.Details, error) {
	f.record("details")
	if f.details == nil {
		return nil, errNotStubbed
	}
	return f.details(media, id, appends)
}

func (f *fakeProvider) Credits(_ context.Context, media domain.MediaType, id int64) (*tmdb.Credits, error) {
	f.record("credits")
	if f.credits == nil {
		return nil, errNotStubbed
	}
	return f.credits(media, id)
}

func (f *fakeProvider) Videos(_ context.Context, media domain.MediaType, id int64) (*tmdb.Videos, error) {
	f.record("videos")
	if f.videos == nil {
		return nil, errNotStubbed
	}
	return f.videos(media, id)
}

func (f *fakeProvider) Recommendations(_ context.Context, media domain.MediaType, id int64, _ int) (*tmdb.Page, error) {
	f.record("recommendations")
	if f.recommendations == nil {
		return nil, errNotStubbed
	}
	return f.recommendations(media, id)
}

func (f *fakeProvider) Search(_ context.Context, kind tmdb.SearchKind, query string, page int, includeAdult bool) (*tmdb.Page, error) {
	f.record("search")
	if f.search == nil {
		return nil, errNotStubbed
	}
	return f.search(kind, query, page, includeAdult)
}

func (f *fakeProvider) Region() string {
	return "US"
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedNow is Saturday 15 June 2024, mid-morning UTC.
var fixedNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestCategoryService(p *fakeProvider) *CategoryService {
	svc := NewCategoryService(p, discardLogger())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// daysAgo formats the date n days before fixedNow.
func daysAgo(n int) string {
	return fixedNow.AddDate(0, 0, -n).Format(domain.DateLayout)
}

func movie(id int64, title, date string, popularity float64) tmdb.Item {
	return tmdb.Item{ID: id, Title: title, ReleaseDate: date, Popularity: popularity}
}

func page(items ...tmdb.Item) *tmdb.Page {
	return &tmdb.Page{Page: 1, Results: items, TotalPages: 1, TotalResults: len(items)}
}

func taglineDetails(_ domain.MediaType, id int64, _ []string) (*tmdb.Details, error) {
	return &tmdb.Details{ID: id, Tagline: fmt.Sprintf("tagline %d", id)}, nil
}

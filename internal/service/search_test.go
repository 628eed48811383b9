package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinescope/cinescope-server/internal/domain"
	domainerrors "github.com/cinescope/cinescope-server/internal/errors"
	"github.com/cinescope/cinescope-server/internal/tmdb"
	"github.com/cinescope/cinescope-server/internal/validation"
)

func multiResults() *tmdb.Page {
	return &tmdb.Page{
		Page: 1,
		Results: []tmdb.Item{
			{ID: 603, MediaType: "movie", Title: "The Matrix", ReleaseDate: "1999-03-30", Popularity: 80, VoteAverage: 8.2, VoteCount: 24000, OriginalLanguage: "en"},
			{ID: 6, MediaType: "person", Name: "Keanu Reeves", ProfilePath: "/keanu.jpg", KnownForDepartment: "Acting", Popularity: 90},
			{ID: 1, MediaType: "tv", Name: "matrix tales", FirstAirDate: "", Popularity: 3, VoteAverage: 6, VoteCount: 10, OriginalLanguage: "ja"},
			{ID: 2, MediaType: "collection", Name: "The Matrix Collection"},
			{ID: 3, MediaType: "movie", Title: "Adult Matrix", Adult: true, Popularity: 500},
			{ID: 604, MediaType: "movie", Title: "The Matrix Reloaded", ReleaseDate: "2003-05-15", Popularity: 50, VoteAverage: 7.0, VoteCount: 11000, OriginalLanguage: "en"},
		},
		TotalPages:   3,
		TotalResults: 57,
	}
}

func newSearchService(p *fakeProvider) *SearchService {
	return NewSearchService(p, validation.New(), discardLogger())
}

func TestSearch_DefaultsToMulti(t *testing.T) {
	var gotKind tmdb.SearchKind
	var gotQuery string
	var gotPage int
	p := &fakeProvider{
		search: func(kind tmdb.SearchKind, query string, page int, _ bool) (*tmdb.Page, error) {
			gotKind, gotQuery, gotPage = kind, query, page
			return multiResults(), nil
		},
	}
	svc := newSearchService(p)

	res, err := svc.Search(context.Background(), SearchOptions{Query: "  matrix  "})
	require.NoError(t, err)

	assert.Equal(t, tmdb.SearchMulti, gotKind)
	assert.Equal(t, "matrix", gotQuery)
	assert.Equal(t, 1, gotPage)

	assert.Equal(t, "matrix", res.Query)
	assert.Equal(t, 57, res.TotalResults)
	assert.Equal(t, 3, res.TotalPages)

	// The collection is skipped and adult hits are excluded; order is kept.
	require.Len(t, res.Results, 4)
	assert.Equal(t, []int64{603, 6, 1, 604}, []int64{res.Results[0].ID, res.Results[1].ID, res.Results[2].ID, res.Results[3].ID})

	person := res.Results[1]
	assert.Equal(t, domain.MediaPerson, person.MediaType)
	assert.Equal(t, "Keanu Reeves", person.Title)
	assert.Equal(t, "/keanu.jpg", person.PosterPath)
	assert.Equal(t, "Acting", person.KnownFor)

	show := res.Results[2]
	assert.Equal(t, domain.MediaTV, show.MediaType)
	assert.Equal(t, "matrix tales", show.Title)
}

func TestSearch_TypedSearchTakesMediaFromKind(t *testing.T) {
	p := &fakeProvider{
		search: func(kind tmdb.SearchKind, _ string, _ int, _ bool) (*tmdb.Page, error) {
			require.Equal(t, tmdb.SearchTV, kind)
			return page(tmdb.Item{ID: 1399, Name: "Game of Thrones", FirstAirDate: "2011-04-17"}), nil
		},
	}
	svc := newSearchService(p)

	res, err := svc.Search(context.Background(), SearchOptions{Query: "thrones", Type: "tv"})
	require.NoError(t, err)

	require.Len(t, res.Results, 1)
	assert.Equal(t, domain.MediaTV, res.Results[0].MediaType)
	assert.Equal(t, "Game of Thrones", res.Results[0].Title)
	assert.Equal(t, "2011-04-17", res.Results[0].Date)
}

func TestSearch_Filters(t *testing.T) {
	p := &fakeProvider{
		search: func(tmdb.SearchKind, string, int, bool) (*tmdb.Page, error) { return multiResults(), nil },
	}
	svc := newSearchService(p)

	res, err := svc.Search(context.Background(), SearchOptions{Query: "matrix", MinVotes: 100, MinRating: 7.5})
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, int64(603), res.Results[0].ID)

	res, err = svc.Search(context.Background(), SearchOptions{Query: "matrix", IncludeAdult: true})
	require.NoError(t, err)
	assert.Len(t, res.Results, 5)
}

func TestSearch_LanguageFilterKeepsPeople(t *testing.T) {
	p := &fakeProvider{
		search: func(tmdb.SearchKind, string, int, bool) (*tmdb.Page, error) { return multiResults(), nil },
	}
	svc := newSearchService(p)

	res, err := svc.Search(context.Background(), SearchOptions{Query: "matrix", Language: "eng"})
	require.NoError(t, err)
	require.Len(t, res.Results, 3)
	assert.Equal(t, int64(603), res.Results[0].ID)
	assert.Equal(t, "en", res.Results[0].Language)
	assert.Equal(t, int64(6), res.Results[1].ID)
	assert.Equal(t, int64(604), res.Results[2].ID)

	res, err = svc.Search(context.Background(), SearchOptions{Query: "matrix", Language: "ja_JP"})
	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	assert.Equal(t, int64(1), res.Results[1].ID)
}

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"en", "en", true},
		{"en-US", "en", true},
		{"pt_BR", "pt", true},
		{"deu", "de", true},
		{" ko ", "ko", true},
		{"not a language", "", false},
		{"e", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := languageCode(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearch_Sorting(t *testing.T) {
	p := &fakeProvider{
		search: func(tmdb.SearchKind, string, int, bool) (*tmdb.Page, error) { return multiResults(), nil },
	}
	svc := newSearchService(p)

	ids := func(items []domain.SearchItem) []int64 {
		out := make([]int64, len(items))
		for i, it := range items {
			out[i] = it.ID
		}
		return out
	}

	tests := []struct {
		sort string
		want []int64
	}{
		{SortPopularity, []int64{6, 603, 604, 1}},
		{SortRating, []int64{603, 604, 1, 6}},
		{SortDate, []int64{604, 603, 6, 1}},
		{SortTitle, []int64{6, 1, 603, 604}},
	}

	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			res, err := svc.Search(context.Background(), SearchOptions{Query: "matrix", Sort: tt.sort})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(res.Results))
		})
	}
}

func TestSearch_Validation(t *testing.T) {
	p := &fakeProvider{}
	svc := newSearchService(p)

	tests := []struct {
		name string
		opts SearchOptions
	}{
		{"blank query", SearchOptions{Query: "   "}},
		{"bad type", SearchOptions{Query: "x", Type: "book"}},
		{"bad sort", SearchOptions{Query: "x", Sort: "random"}},
		{"page too high", SearchOptions{Query: "x", Page: 501}},
		{"rating out of range", SearchOptions{Query: "x", MinRating: 11}},
		{"unknown language", SearchOptions{Query: "x", Language: "not a language"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Search(context.Background(), tt.opts)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
		})
	}
	assert.Zero(t, p.count("search"))
}

func TestSearch_ProviderFailure(t *testing.T) {
	p := &fakeProvider{
		search: func(tmdb.SearchKind, string, int, bool) (*tmdb.Page, error) { return nil, tmdb.ErrRateLimited },
	}
	svc := newSearchService(p)

	_, err := svc.Search(context.Background(), SearchOptions{Query: "matrix"})
	assert.ErrorIs(t, err, domainerrors.ErrUpstream)
	assert.ErrorIs(t, err, tmdb.ErrRateLimited)
}

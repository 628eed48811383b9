package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinescope/cinescope-server/internal/domain"
	domainerrors "github.com/cinescope/cinescope-server/internal/errors"
	"github.com/cinescope/cinescope-server/internal/tmdb"
)

func duneProvider() *fakeProvider {
	return &fakeProvider{
		details: func(_ domain.MediaType, id int64, _ []string) (*tmdb.Details, error) {
			return &tmdb.Details{
				ID:            id,
				Title:         "Dune: Part Two",
				OriginalTitle: "Dune: Part Two",
				ReleaseDate:   "2024-02-27",
				Tagline:       "Long live the fighters.",
				Runtime:       167,
				Genres:        []tmdb.Genre{{ID: 878, Name: "Science Fiction"}, {ID: 12, Name: "Adventure"}},
				Companies:     []tmdb.Company{{ID: 923, Name: "Legendary Pictures", OriginCountry: "US"}},
				VoteAverage:   8.2,
				VoteCount:     5000,
			}, nil
		},
		credits: func(domain.MediaType, int64) (*tmdb.Credits, error) {
			cast := make([]tmdb.CastMember, 0, 12)
			for i := 11; i >= 0; i-- {
				cast = append(cast, tmdb.CastMember{ID: int64(100 + i), Name: "Actor", Order: i})
			}
			return &tmdb.Credits{
				Cast: cast,
				Crew: []tmdb.CrewMember{
					{ID: 137427, Name: "Denis Villeneuve", Job: "Director", Department: "Directing"},
					{ID: 137427, Name: "Denis Villeneuve", Job: "Director", Department: "Directing"},
					{ID: 9, Name: "Hans Zimmer", Job: "Original Music Composer", Department: "Sound"},
				},
			}, nil
		},
		videos: func(domain.MediaType, int64) (*tmdb.Videos, error) {
			return &tmdb.Videos{Results: []tmdb.Video{
				{Key: "teaser", Site: "YouTube", Type: "Teaser", Official: true},
				{Key: "fan", Name: "Fan Trailer", Site: "YouTube", Type: "Trailer"},
				{Key: "vimeo", Site: "Vimeo", Type: "Trailer", Official: true},
				{Key: "Way9Dexny3w", Name: "Official Trailer 3", Site: "YouTube", Type: "Trailer", Official: true},
			}}, nil
		},
		recommendations: func(domain.MediaType, int64) (*tmdb.Page, error) {
			items := make([]tmdb.Item, 15)
			for i := range items {
				items[i] = movie(int64(i+1), "Recommended", "2023-01-01", 10)
			}
			return page(items...), nil
		},
		watchProviders: func(domain.MediaType, int64) (*tmdb.WatchProviders, error) {
			return &tmdb.WatchProviders{Results: map[string]tmdb.RegionProviders{
				"US": {
					Link:     "https://www.themoviedb.org/movie/693134/watch?locale=US",
					Flatrate: []tmdb.Provider{{ProviderID: 1899, ProviderName: "Max", LogoPath: "/max.jpg"}},
					Rent:     []tmdb.Provider{{ProviderID: 2, ProviderName: "Apple TV"}},
				},
				"GB": {Flatrate: []tmdb.Provider{{ProviderID: 8, ProviderName: "Netflix"}}},
			}}, nil
		},
	}
}

func TestTitleService_Movie(t *testing.T) {
	svc := NewTitleService(duneProvider(), discardLogger())

	d, err := svc.Movie(context.Background(), 693134)
	require.NoError(t, err)

	assert.Equal(t, int64(693134), d.ID)
	assert.Equal(t, domain.MediaMovie, d.MediaType)
	assert.Equal(t, "Dune: Part Two", d.Title)
	assert.Equal(t, "February 27, 2024", d.FormattedReleaseDate)
	assert.Equal(t, "Long live the fighters.", d.Tagline)
	assert.Equal(t, 167, d.Runtime)
	assert.Equal(t, []domain.Genre{{ID: 878, Name: "Science Fiction"}, {ID: 12, Name: "Adventure"}}, d.Genres)
	require.Len(t, d.Companies, 1)
	assert.Equal(t, "Legendary Pictures", d.Companies[0].Name)

	require.Len(t, d.Cast, maxCast)
	for i, c := range d.Cast {
		assert.Equal(t, i, c.Order)
	}

	require.Len(t, d.Directors, 1)
	assert.Equal(t, "Denis Villeneuve", d.Directors[0].Name)

	require.NotNil(t, d.Trailer)
	assert.Equal(t, "Way9Dexny3w", d.Trailer.Key)
	assert.Equal(t, "https://www.youtube.com/watch?v=Way9Dexny3w", d.Trailer.URL)

	assert.Len(t, d.Recommendations, maxRecommendations)
	assert.Equal(t, domain.MediaMovie, d.Recommendations[0].MediaType)

	require.NotNil(t, d.WatchProviders)
	assert.Equal(t, "US", d.WatchProviders.Region)
	require.Len(t, d.WatchProviders.Subscription, 1)
	assert.Equal(t, "Max", d.WatchProviders.Subscription[0].Name)
	assert.Len(t, d.WatchProviders.Rent, 1)
	assert.Empty(t, d.WatchProviders.Buy)
}

func TestTitleService_TVUsesCreators(t *testing.T) {
	p := &fakeProvider{
		details: func(_ domain.MediaType, id int64, _ []string) (*tmdb.Details, error) {
			return &tmdb.Details{
				ID:              id,
				Name:            "Severance",
				FirstAirDate:    "2022-02-17",
				EpisodeRunTime:  []int{55},
				CreatedBy:       []tmdb.Creator{{ID: 1, Name: "Dan Erickson"}},
				Networks:        []tmdb.Company{{ID: 2552, Name: "Apple TV+"}},
				NumberOfSeasons: 2,
			}, nil
		},
		credits: func(domain.MediaType, int64) (*tmdb.Credits, error) {
			return &tmdb.Credits{Crew: []tmdb.CrewMember{{ID: 2, Name: "Ben Stiller", Job: "Director"}}}, nil
		},
	}
	svc := NewTitleService(p, discardLogger())

	d, err := svc.TV(context.Background(), 95396)
	require.NoError(t, err)

	assert.Equal(t, domain.MediaTV, d.MediaType)
	assert.Equal(t, "Severance", d.Title)
	assert.Equal(t, "February 17, 2022", d.FormattedReleaseDate)
	assert.Equal(t, 55, d.Runtime)
	assert.Equal(t, 2, d.NumberOfSeasons)
	require.Len(t, d.Networks, 1)
	assert.Equal(t, "Apple TV+", d.Networks[0].Name)

	require.Len(t, d.Directors, 1)
	assert.Equal(t, "Dan Erickson", d.Directors[0].Name)
	assert.Equal(t, "Creator", d.Directors[0].Job)
}

func TestTitleService_OptionalPartsMayFail(t *testing.T) {
	p := duneProvider()
	p.videos = nil
	p.recommendations = nil
	p.watchProviders = nil
	svc := NewTitleService(p, discardLogger())

	d, err := svc.Movie(context.Background(), 693134)
	require.NoError(t, err)

	assert.Nil(t, d.Trailer)
	assert.NotNil(t, d.Recommendations)
	assert.Empty(t, d.Recommendations)
	assert.Nil(t, d.WatchProviders)
}

func TestTitleService_NotFound(t *testing.T) {
	p := duneProvider()
	p.details = func(domain.MediaType, int64, []string) (*tmdb.Details, error) {
		return nil, &tmdb.Error{Op: "details", Path: "/movie/1", Err: tmdb.ErrNotFound}
	}
	svc := NewTitleService(p, discardLogger())

	_, err := svc.Movie(context.Background(), 1)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.EqualError(t, err, "movie 1 not found")
}

func TestTitleService_CreditsFailureIsUpstream(t *testing.T) {
	p := duneProvider()
	p.credits = func(domain.MediaType, int64) (*tmdb.Credits, error) { return nil, tmdb.ErrServer }
	svc := NewTitleService(p, discardLogger())

	_, err := svc.TV(context.Background(), 1)
	assert.ErrorIs(t, err, domainerrors.ErrUpstream)
	assert.ErrorIs(t, err, tmdb.ErrServer)
}

func TestTitleService_InvalidID(t *testing.T) {
	p := duneProvider()
	svc := NewTitleService(p, discardLogger())

	_, err := svc.Movie(context.Background(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	assert.Zero(t, p.count("details"))
}

func TestFirstTrailer(t *testing.T) {
	assert.Nil(t, firstTrailer(nil))
	assert.Nil(t, firstTrailer(&tmdb.Videos{Results: []tmdb.Video{{Site: "YouTube", Type: "Clip"}}}))

	got := firstTrailer(&tmdb.Videos{Results: []tmdb.Video{
		{Key: "a", Site: "YouTube", Type: "Trailer"},
		{Key: "b", Site: "YouTube", Type: "Trailer"},
	}})
	require.NotNil(t, got)
	assert.Equal(t, "a", got.Key)
}

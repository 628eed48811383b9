// Package domain contains the normalized entities CineScope builds from provider
// records. Nothing here is persisted; every value lives for one request.
package domain

import (
	"encoding/json"
	"time"
)

// MediaType distinguishes movies from TV shows (and people in search results).
// Provider ids are only unique within a media type.
type MediaType string

// Media types.
const (
	MediaMovie  MediaType = "movie"
	MediaTV     MediaType = "tv"
	MediaPerson MediaType = "person"
)

// Valid reports whether m is one of the known media types.
func (m MediaType) Valid() bool {
	switch m {
	case MediaMovie, MediaTV, MediaPerson:
		return true
	}
	return false
}

// DateLayout is the provider's calendar date format.
const DateLayout = "2006-01-02"

// ContentItem is a provider movie or TV record normalized to one shape.
// Date holds release_date for movies and first_air_date for shows.
type ContentItem struct {
	ID               int64
	MediaType        MediaType
	Title            string
	OriginalTitle    string
	Date             string
	Overview         string
	Popularity       float64
	VoteAverage      float64
	VoteCount        int
	GenreIDs         []int
	PosterPath       string
	BackdropPath     string
	OriginalLanguage string
	Adult            bool
}

// Key identifies an item across media types.
type Key struct {
	ID        int64
	MediaType MediaType
}

// Key returns the item's identity.
func (c ContentItem) Key() Key {
	return Key{ID: c.ID, MediaType: c.MediaType}
}

// ParsedDate returns the primary date and whether it was present and valid.
func (c ContentItem) ParsedDate() (time.Time, bool) {
	if c.Date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, c.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// itemJSON is the wire shape. Movies keep the provider's title/release_date
// names and shows keep name/first_air_date.
type itemJSON struct {
	ID               int64     `json:"id"`
	MediaType        MediaType `json:"media_type"`
	Title            string    `json:"title,omitempty"`
	OriginalTitle    string    `json:"original_title,omitempty"`
	ReleaseDate      *string   `json:"release_date,omitempty"`
	Name             string    `json:"name,omitempty"`
	OriginalName     string    `json:"original_name,omitempty"`
	FirstAirDate     *string   `json:"first_air_date,omitempty"`
	Overview         string    `json:"overview"`
	Popularity       float64   `json:"popularity"`
	VoteAverage      float64   `json:"vote_average"`
	VoteCount        int       `json:"vote_count"`
	GenreIDs         []int     `json:"genre_ids"`
	PosterPath       string    `json:"poster_path,omitempty"`
	BackdropPath     string    `json:"backdrop_path,omitempty"`
	OriginalLanguage string    `json:"original_language,omitempty"`
	Adult            bool      `json:"adult"`
}

func (c ContentItem) wire() itemJSON {
	w := itemJSON{
		ID:               c.ID,
		MediaType:        c.MediaType,
		Overview:         c.Overview,
		Popularity:       c.Popularity,
		VoteAverage:      c.VoteAverage,
		VoteCount:        c.VoteCount,
		GenreIDs:         c.GenreIDs,
		PosterPath:       c.PosterPath,
		BackdropPath:     c.BackdropPath,
		OriginalLanguage: c.OriginalLanguage,
		Adult:            c.Adult,
	}
	if w.GenreIDs == nil {
		w.GenreIDs = []int{}
	}

	date := c.Date
	if c.MediaType == MediaTV {
		w.Name = c.Title
		w.OriginalName = c.OriginalTitle
		w.FirstAirDate = &date
	} else {
		w.Title = c.Title
		w.OriginalTitle = c.OriginalTitle
		w.ReleaseDate = &date
	}
	return w
}

// MarshalJSON renders the item with media-specific field names.
func (c ContentItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.wire())
}

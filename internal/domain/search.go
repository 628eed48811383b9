package domain

// SearchItem is a search hit in a uniform shape for movies, shows and people.
// For people, Title is the person's name and PosterPath their profile image.
type SearchItem struct {
	ID          int64     `json:"id"`
	MediaType   MediaType `json:"media_type"`
	Title       string    `json:"title"`
	Date        string    `json:"date,omitempty"`
	Overview    string    `json:"overview,omitempty"`
	Popularity  float64   `json:"popularity"`
	VoteAverage float64   `json:"vote_average"`
	VoteCount   int       `json:"vote_count"`
	PosterPath  string    `json:"poster_path,omitempty"`
	Adult       bool      `json:"adult"`
	Language    string    `json:"original_language,omitempty"`
	KnownFor    string    `json:"known_for_department,omitempty"`
}

// SearchPage is one page of formatted search hits.
type SearchPage struct {
	Query        string       `json:"query"`
	Results      []SearchItem `json:"results"`
	TotalResults int          `json:"total_results"`
	TotalPages   int          `json:"total_pages"`
	Page         int          `json:"page"`
}

package domain

// Genre is a provider genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Company is a production company or TV network.
type Company struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path,omitempty"`
	OriginCountry string `json:"origin_country,omitempty"`
}

// CastMember is a credited performer.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
	Order       int    `json:"order"`
}

// CrewMember is a credited crew member. Show creators are reported with Job "Creator".
type CrewMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	Department  string `json:"department,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Trailer is a playable video.
type Trailer struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	URL  string `json:"url"`
}

// StreamingProvider is a platform offering a title.
type StreamingProvider struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	LogoPath string `json:"logo_path,omitempty"`
}

// WatchAvailability lists where a title can be watched in one region,
// grouped by monetization type.
type WatchAvailability struct {
	Region       string              `json:"region"`
	Link         string              `json:"link,omitempty"`
	Subscription []StreamingProvider `json:"subscription"`
	Ads          []StreamingProvider `json:"ads"`
	Free         []StreamingProvider `json:"free"`
	Rent         []StreamingProvider `json:"rent"`
	Buy          []StreamingProvider `json:"buy"`
}

// TitleDetail is the assembled detail page for one movie or show.
type TitleDetail struct {
	ID                   int64     `json:"id"`
	MediaType            MediaType `json:"media_type"`
	Title                string    `json:"title"`
	OriginalTitle        string    `json:"original_title,omitempty"`
	Tagline              string    `json:"tagline,omitempty"`
	Overview             string    `json:"overview"`
	ReleaseDate          string    `json:"release_date,omitempty"`
	FormattedReleaseDate string    `json:"formatted_release_date"`
	Status               string    `json:"status,omitempty"`
	Runtime              int       `json:"runtime,omitempty"`
	Genres               []Genre   `json:"genres"`
	Popularity           float64   `json:"popularity"`
	VoteAverage          float64   `json:"vote_average"`
	VoteCount            int       `json:"vote_count"`
	PosterPath           string    `json:"poster_path,omitempty"`
	BackdropPath         string    `json:"backdrop_path,omitempty"`
	Homepage             string    `json:"homepage,omitempty"`
	IMDbID               string    `json:"imdb_id,omitempty"`
	Budget               int64     `json:"budget,omitempty"`
	Revenue              int64     `json:"revenue,omitempty"`
	NumberOfSeasons      int       `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes     int       `json:"number_of_episodes,omitempty"`
	Companies            []Company `json:"production_companies"`
	Networks             []Company `json:"networks,omitempty"`

	Cast            []CastMember       `json:"cast"`
	Directors       []CrewMember       `json:"directors"`
	Trailer         *Trailer           `json:"trailer,omitempty"`
	Recommendations []ContentItem      `json:"recommendations"`
	WatchProviders  *WatchAvailability `json:"watch_providers,omitempty"`
}

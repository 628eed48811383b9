package tmdb

// TimeWindow selects the trending period.
type TimeWindow string

// Trending windows.
const (
	WindowDay  TimeWindow = "day"
	WindowWeek TimeWindow = "week"
)

// SearchKind selects the search endpoint.
type SearchKind string

// Search endpoints.
const (
	SearchMulti  SearchKind = "multi"
	SearchMovie  SearchKind = "movie"
	SearchTV     SearchKind = "tv"
	SearchPerson SearchKind = "person"
)

// Item is a movie, show or person as returned in list endpoints.
// Movies fill Title/ReleaseDate, shows fill Name/FirstAirDate.
type Item struct {
	ID                 int64   `json:"id"`
	MediaType          string  `json:"media_type,omitempty"`
	Title              string  `json:"title,omitempty"`
	OriginalTitle      string  `json:"original_title,omitempty"`
	ReleaseDate        string  `json:"release_date,omitempty"`
	Name               string  `json:"name,omitempty"`
	OriginalName       string  `json:"original_name,omitempty"`
	FirstAirDate       string  `json:"first_air_date,omitempty"`
	Overview           string  `json:"overview,omitempty"`
	Popularity         float64 `json:"popularity"`
	VoteAverage        float64 `json:"vote_average"`
	VoteCount          int     `json:"vote_count"`
	GenreIDs           []int   `json:"genre_ids,omitempty"`
	PosterPath         string  `json:"poster_path,omitempty"`
	BackdropPath       string  `json:"backdrop_path,omitempty"`
	ProfilePath        string  `json:"profile_path,omitempty"`
	OriginalLanguage   string  `json:"original_language,omitempty"`
	KnownForDepartment string  `json:"known_for_department,omitempty"`
	Adult              bool    `json:"adult"`
}

// Page is a paginated list response.
type Page struct {
	Page         int    `json:"page"`
	Results      []Item `json:"results"`
	TotalPages   int    `json:"total_pages"`
	TotalResults int    `json:"total_results"`
}

// Provider is a watch provider entry.
type Provider struct {
	ProviderID      int    `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path,omitempty"`
	DisplayPriority int    `json:"display_priority"`
}

// RegionProviders groups providers by monetization type for one region.
type RegionProviders struct {
	Link     string     `json:"link,omitempty"`
	Flatrate []Provider `json:"flatrate,omitempty"`
	Ads      []Provider `json:"ads,omitempty"`
	Free     []Provider `json:"free,omitempty"`
	Rent     []Provider `json:"rent,omitempty"`
	Buy      []Provider `json:"buy,omitempty"`
}

// WatchProviders is the availability of a title keyed by ISO 3166-1 region.
type WatchProviders struct {
	ID      int64                      `json:"id,omitempty"`
	Results map[string]RegionProviders `json:"results"`
}

// Region returns the availability for region, if any.
func (w *WatchProviders) Region(region string) (RegionProviders, bool) {
	if w == nil {
		return RegionProviders{}, false
	}
	rp, ok := w.Results[region]
	return rp, ok
}

// Genre is a named genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Company is a production company or network.
type Company struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path,omitempty"`
	OriginCountry string `json:"origin_country,omitempty"`
}

// Creator is a show creator.
type Creator struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Details is the full record for one movie or show. Appended sub-resources
// are only set when requested through append_to_response.
type Details struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title,omitempty"`
	OriginalTitle    string    `json:"original_title,omitempty"`
	ReleaseDate      string    `json:"release_date,omitempty"`
	Name             string    `json:"name,omitempty"`
	OriginalName     string    `json:"original_name,omitempty"`
	FirstAirDate     string    `json:"first_air_date,omitempty"`
	LastAirDate      string    `json:"last_air_date,omitempty"`
	Tagline          string    `json:"tagline,omitempty"`
	Overview         string    `json:"overview,omitempty"`
	Status           string    `json:"status,omitempty"`
	Homepage         string    `json:"homepage,omitempty"`
	IMDbID           string    `json:"imdb_id,omitempty"`
	Runtime          int       `json:"runtime,omitempty"`
	EpisodeRunTime   []int     `json:"episode_run_time,omitempty"`
	Budget           int64     `json:"budget,omitempty"`
	Revenue          int64     `json:"revenue,omitempty"`
	NumberOfSeasons  int       `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int       `json:"number_of_episodes,omitempty"`
	Popularity       float64   `json:"popularity"`
	VoteAverage      float64   `json:"vote_average"`
	VoteCount        int       `json:"vote_count"`
	PosterPath       string    `json:"poster_path,omitempty"`
	BackdropPath     string    `json:"backdrop_path,omitempty"`
	OriginalLanguage string    `json:"original_language,omitempty"`
	Adult            bool      `json:"adult"`
	Genres           []Genre   `json:"genres,omitempty"`
	Companies        []Company `json:"production_companies,omitempty"`
	Networks         []Company `json:"networks,omitempty"`
	CreatedBy        []Creator `json:"created_by,omitempty"`

	WatchProviders *WatchProviders `json:"watch/providers,omitempty"`
}

// CastMember is a performer credit.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
	Order       int    `json:"order"`
}

// CrewMember is a crew credit.
type CrewMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	Department  string `json:"department,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Credits lists cast and crew for one title.
type Credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Video is a trailer, teaser or clip hosted on a video site.
type Video struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at,omitempty"`
}

// Videos lists the videos of one title.
type Videos struct {
	ID      int64   `json:"id"`
	Results []Video `json:"results"`
}

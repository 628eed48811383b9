package catalog

import "github.com/cinescope/cinescope-server/internal/domain"

var types = []Type{Mood, Awards, Studios, Networks, Genres}

const (
	popular   = Text("popularity.desc")
	bestRated = Text("vote_average.desc")
)

var table = []Spec{
	// Mood
	{Type: Mood, Key: "family-movie-night", Filters: map[string]FilterValue{
		"with_genres": IDs{10751, 16},
		"sort_by":     popular,
	}},
	{Type: Mood, Key: "rom-com-classics", Label: "Rom-Com Classics", Filters: map[string]FilterValue{
		"with_genres":      IDs{10749, 35},
		"vote_average.gte": Threshold(6.5),
		"vote_count.gte":   Threshold(300),
		"sort_by":          bestRated,
	}},
	{Type: Mood, Key: "psychological-thrillers", Filters: map[string]FilterValue{
		"with_genres": IDs{53, 9648},
		"sort_by":     popular,
	}},
	{Type: Mood, Key: "feel-good-shows", MediaType: domain.MediaTV, Filters: map[string]FilterValue{
		"with_genres": IDs{35, 10751},
		"sort_by":     popular,
	}},
	{Type: Mood, Key: "musicals", Filters: map[string]FilterValue{
		"with_genres": IDs{10402},
		"sort_by":     popular,
	}},
	{Type: Mood, Key: "halloween", Filters: map[string]FilterValue{
		"with_genres": IDs{27},
		"sort_by":     popular,
	}},
	{Type: Mood, Key: "bingeable-series", MediaType: domain.MediaTV, Filters: map[string]FilterValue{
		"with_genres":      IDs{18},
		"vote_average.gte": Threshold(8),
		"vote_count.gte":   Threshold(500),
		"sort_by":          popular,
	}},

	// Awards
	{Type: Awards, Key: "oscar-winners", Filters: map[string]FilterValue{
		"vote_average.gte": Threshold(8),
		"vote_count.gte":   Threshold(10000),
		"sort_by":          bestRated,
	}},
	{Type: Awards, Key: "top-grossing", Filters: map[string]FilterValue{
		"sort_by": Text("revenue.desc"),
	}},
	{Type: Awards, Key: "imdb-top-250", Label: "IMDb Top 250", Filters: map[string]FilterValue{
		"vote_count.gte": Threshold(5000),
		"sort_by":        bestRated,
	}},
	{Type: Awards, Key: "blockbuster-shows", MediaType: domain.MediaTV, Filters: map[string]FilterValue{
		"vote_average.gte": Threshold(7.5),
		"vote_count.gte":   Threshold(1000),
		"sort_by":          popular,
	}},
	{Type: Awards, Key: "top-rated", Filters: map[string]FilterValue{
		"vote_count.gte": Threshold(1000),
		"sort_by":        bestRated,
	}},

	// Studios
	{Type: Studios, Key: "disney", Filters: companies(2)},
	{Type: Studios, Key: "pixar", Filters: companies(3)},
	{Type: Studios, Key: "marvel", Filters: companies(420)},
	{Type: Studios, Key: "dc", Label: "DC", Filters: companies(9993)},
	{Type: Studios, Key: "universal", Filters: companies(33)},
	{Type: Studios, Key: "lucasfilm", Filters: companies(1)},
	{Type: Studios, Key: "illumination", Filters: companies(6704)},
	{Type: Studios, Key: "dreamworks", Label: "DreamWorks", Filters: companies(521)},

	// Networks
	{Type: Networks, Key: "netflix", MediaType: domain.MediaTV, Filters: networks(213)},
	{Type: Networks, Key: "apple-tv", Label: "Apple TV+", MediaType: domain.MediaTV, Filters: networks(2552)},
	{Type: Networks, Key: "disney-plus", Label: "Disney+", MediaType: domain.MediaTV, Filters: networks(2739)},
	{Type: Networks, Key: "prime-video", MediaType: domain.MediaTV, Filters: networks(1024)},
	{Type: Networks, Key: "hbo", Label: "HBO", MediaType: domain.MediaTV, Filters: networks(49)},
	{Type: Networks, Key: "paramount-plus", Label: "Paramount+", MediaType: domain.MediaTV, Filters: networks(4330)},

	// Genres
	{Type: Genres, Key: "action", Filters: genres(28)},
	{Type: Genres, Key: "adventure", Filters: genres(12)},
	{Type: Genres, Key: "animation", Filters: genres(16)},
	{Type: Genres, Key: "comedy", Filters: genres(35)},
	{Type: Genres, Key: "crime", Filters: genres(80)},
	{Type: Genres, Key: "documentary", Filters: genres(99)},
	{Type: Genres, Key: "drama", Filters: genres(18)},
	{Type: Genres, Key: "family", Filters: genres(10751)},
	{Type: Genres, Key: "fantasy", Filters: genres(14)},
	{Type: Genres, Key: "history", Filters: genres(36)},
	{Type: Genres, Key: "horror", Filters: genres(27)},
	{Type: Genres, Key: "music", Filters: genres(10402)},
	{Type: Genres, Key: "mystery", Filters: genres(9648)},
	{Type: Genres, Key: "romance", Filters: genres(10749)},
	{Type: Genres, Key: "science-fiction", Filters: genres(878)},
	{Type: Genres, Key: "thriller", Filters: genres(53)},
	{Type: Genres, Key: "war", Filters: genres(10752)},
	{Type: Genres, Key: "western", Filters: genres(37)},
}

func genres(id int) map[string]FilterValue {
	return map[string]FilterValue{"with_genres": IDs{id}, "sort_by": popular}
}

func companies(id int) map[string]FilterValue {
	return map[string]FilterValue{"with_companies": IDs{id}, "sort_by": popular}
}

func networks(id int) map[string]FilterValue {
	return map[string]FilterValue{"with_networks": IDs{id}, "sort_by": popular}
}

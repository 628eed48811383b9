package tmdb

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/cinescope/cinescope-server/internal/domain"
)

// maxPage is the highest page TMDB serves.
const maxPage = 500

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	return url.Values{"page": {strconv.Itoa(page)}}
}

func titlePath(media domain.MediaType, id int64, sub ...string) string {
	p := "/" + string(media) + "/" + strconv.FormatInt(id, 10)
	for _, s := range sub {
		p += "/" + s
	}
	return p
}

// Discover runs a discovery query with provider filter params.
func (c *Client) Discover(ctx context.Context, media domain.MediaType, params map[string]string, page int) (*Page, error) {
	q := pageQuery(page)
	for k, v := range params {
		q.Set(k, v)
	}
	return getJSON[Page](ctx, c, "discover", "/discover/"+string(media), q)
}

// Trending returns the trending titles for window.
func (c *Client) Trending(ctx context.Context, media domain.MediaType, window TimeWindow, page int) (*Page, error) {
	return getJSON[Page](ctx, c, "trending", "/trending/"+string(media)+"/"+string(window), pageQuery(page))
}

// Upcoming returns upcoming theatrical movie releases in the reference region.
func (c *Client) Upcoming(ctx context.Context, page int) (*Page, error) {
	q := pageQuery(page)
	q.Set("region", c.region)
	return getJSON[Page](ctx, c, "upcoming", "/movie/upcoming", q)
}

// List returns a curated provider list such as popular or top_rated.
func (c *Client) List(ctx context.Context, media domain.MediaType, list string, page int) (*Page, error) {
	q := pageQuery(page)
	if media == domain.MediaMovie {
		q.Set("region", c.region)
	}
	return getJSON[Page](ctx, c, "list", "/"+string(media)+"/"+list, q)
}

// WatchProviders returns where a title can be watched, by region.
func (c *Client) WatchProviders(ctx context.Context, media domain.MediaType, id int64) (*WatchProviders, error) {
	return getJSON[WatchProviders](ctx, c, "watchProviders", titlePath(media, id, "watch", "providers"), nil)
}

// Details returns the full record of a title. appends names sub-resources
// folded into the same response, e.g. "watch/providers".
func (c *Client) Details(ctx context.Context, media domain.MediaType, id int64, appends ...string) (*Details, error) {
	q := url.Values{}
	if len(appends) > 0 {
		q.Set("append_to_response", strings.Join(appends, ","))
	}
	return getJSON[Details](ctx, c, "details", titlePath(media, id), q)
}

// Credits returns cast and crew.
func (c *Client) Credits(ctx context.Context, media domain.MediaType, id int64) (*Credits, error) {
	return getJSON[Credits](ctx, c, "credits", titlePath(media, id, "credits"), nil)
}

// Videos returns trailers, teasers and clips.
func (c *Client) Videos(ctx context.Context, media domain.MediaType, id int64) (*Videos, error) {
	return getJSON[Videos](ctx, c, "videos", titlePath(media, id, "videos"), nil)
}

// Recommendations returns titles recommended from id.
func (c *Client) Recommendations(ctx context.Context, media domain.MediaType, id int64, page int) (*Page, error) {
	return getJSON[Page](ctx, c, "recommendations", titlePath(media, id, "recommendations"), pageQuery(page))
}

// Search runs a text search.
func (c *Client) Search(ctx context.Context, kind SearchKind, query string, page int, includeAdult bool) (*Page, error) {
	q := pageQuery(page)
	q.Set("query", query)
	q.Set("include_adult", strconv.FormatBool(includeAdult))
	return getJSON[Page](ctx, c, "search", "/search/"+string(kind), q)
}

package service

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cinescope/cinescope-server/internal/domain"
	"github.com/cinescope/cinescope-server/internal/fanout"
	"github.com/cinescope/cinescope-server/internal/tmdb"
)

// platform is a subscription service and the watch provider ids it appears under.
type platform struct {
	Name        string
	ProviderIDs []int
}

var streamingPlatforms = []platform{
	{Name: "Netflix", ProviderIDs: []int{8, 1796}},
	{Name: "Prime Video", ProviderIDs: []int{9, 119}},
	{Name: "Disney+", ProviderIDs: []int{337}},
	{Name: "Max", ProviderIDs: []int{1899, 384}},
	{Name: "Hulu", ProviderIDs: []int{15}},
	{Name: "Apple TV+", ProviderIDs: []int{350}},
	{Name: "Paramount+", ProviderIDs: []int{531}},
	{Name: "Peacock", ProviderIDs: []int{386, 387}},
}

// Lowercased production company name fragments of streaming studios.
var streamingStudios = []string{
	"netflix",
	"amazon studios",
	"amazon mgm",
	"apple original",
	"apple studios",
	"hulu",
	"hbo max",
	"disney+",
	"paramount+",
	"peacock",
}

// recencyWindow covers releases From+1 through To days ago. The first window
// (From 0) also includes today.
type recencyWindow struct {
	From, To int
	MinVotes int
}

// Newer windows use lower vote floors since fresh releases have few votes.
var recencyWindows = []recencyWindow{
	{From: 0, To: 3, MinVotes: 0},
	{From: 3, To: 7, MinVotes: 2},
	{From: 7, To: 14, MinVotes: 5},
	{From: 14, To: 30, MinVotes: 10},
}

const (
	streamingConcurrency = 8
	streamingCandidates  = 40
	streamingResults     = 20

	lowVoteThreshold  = 50
	recentReleaseDays = 90

	minStreamingScore  = 1
	maxStreamingScore  = 10
	keepStreamingScore = 6
	keepFreshDays      = 14
)

type discoverQuery struct {
	platform platform
	window   recencyWindow
}

// streamingCandidate is a classified OTT release.
type streamingCandidate struct {
	item     domain.ContentItem
	date     time.Time
	days     int
	score    int
	details  *tmdb.Details
	platform string
}

// StreamingNow surfaces movies that recently arrived on subscription streaming,
// ranked by a release score. Every provider call here is best effort.
func (s *CategoryService) StreamingNow(ctx context.Context) (*CategoryResult, error) {
	today := s.today()

	queries := make([]discoverQuery, 0, len(streamingPlatforms)*len(recencyWindows))
	for _, w := range recencyWindows {
		for _, p := range streamingPlatforms {
			queries = append(queries, discoverQuery{platform: p, window: w})
		}
	}

	batches := fanout.Map(ctx, queries, streamingConcurrency, func(ctx context.Context, q discoverQuery) ([]domain.ContentItem, error) {
		p, err := s.provider.Discover(ctx, domain.MediaMovie, s.streamingParams(q, today), 1)
		if err != nil {
			return nil, err
		}
		return toContentItems(p.Results, domain.MediaMovie), nil
	})
	if failed := fanout.Failures(batches); failed > 0 {
		s.logger.Debug("streaming discovery batches failed", "failed", failed, "batches", len(queries))
	}

	var merged []domain.ContentItem
	for _, b := range fanout.Successes(batches) {
		merged = append(merged, b...)
	}
	candidates := selectCandidates(dedupe(merged), streamingCandidates)

	region := s.provider.Region()
	classified := fanout.Map(ctx, candidates, streamingConcurrency, func(ctx context.Context, it domain.ContentItem) (*streamingCandidate, error) {
		d, err := s.provider.Details(ctx, domain.MediaMovie, it.ID, "watch/providers")
		if err != nil {
			return nil, err
		}
		return classifyStreaming(it, d, region, today), nil
	})

	var kept []streamingCandidate
	for _, c := range fanout.Successes(classified) {
		if c != nil {
			kept = append(kept, *c)
		}
	}
	slices.SortStableFunc(kept, compareStreaming)
	if len(kept) > streamingResults {
		kept = kept[:streamingResults]
	}

	results := make([]domain.RankedResult, len(kept))
	for i, c := range kept {
		results[i] = domain.RankedResult{Item: c.item, Annotations: c.annotations(today)}
	}

	s.logger.Debug("streaming now assembled",
		"candidates", len(candidates),
		"lookups_failed", fanout.Failures(classified),
		"results", len(results),
	)

	return &CategoryResult{
		Category:  CategoryStreamingNow,
		MediaType: domain.MediaMovie,
		Page:      singlePage(results),
	}, nil
}

// streamingParams builds the discovery filters for one platform and window.
func (s *CategoryService) streamingParams(q discoverQuery, today time.Time) map[string]string {
	ids := make([]string, len(q.platform.ProviderIDs))
	for i, id := range q.platform.ProviderIDs {
		ids[i] = strconv.Itoa(id)
	}

	latest := today.AddDate(0, 0, -q.window.From)
	if q.window.From > 0 {
		latest = latest.AddDate(0, 0, -1)
	}
	earliest := today.AddDate(0, 0, -q.window.To)

	return map[string]string{
		"with_watch_providers":          strings.Join(ids, "|"),
		"watch_region":                  s.provider.Region(),
		"with_watch_monetization_types": "flatrate",
		"primary_release_date.gte":      earliest.Format(domain.DateLayout),
		"primary_release_date.lte":      latest.Format(domain.DateLayout),
		"vote_count.gte":                strconv.Itoa(q.window.MinVotes),
		"sort_by":                       "popularity.desc",
	}
}

// selectCandidates keeps the limit most recent items, most popular first on ties.
// Items without a parseable date cannot be scored and are dropped.
func selectCandidates(items []domain.ContentItem, limit int) []domain.ContentItem {
	dated := make([]domain.ContentItem, 0, len(items))
	for _, it := range items {
		if _, ok := it.ParsedDate(); ok {
			dated = append(dated, it)
		}
	}
	slices.SortStableFunc(dated, func(a, b domain.ContentItem) int {
		if c := compareDates(b, a); c != 0 {
			return c
		}
		return cmp.Compare(b.Popularity, a.Popularity)
	})
	if len(dated) > limit {
		dated = dated[:limit]
	}
	return dated
}

// classifyStreaming returns the scored candidate, or nil when the title is not
// an OTT original or scores too low.
func classifyStreaming(it domain.ContentItem, d *tmdb.Details, region string, today time.Time) *streamingCandidate {
	date, ok := it.ParsedDate()
	if !ok {
		return nil
	}
	rp, _ := d.WatchProviders.Region(region)
	days := daysSince(date, today)

	if !isOTTOriginal(d, rp, days) {
		return nil
	}

	score := streamingScore(it, rp, days)
	if score < keepStreamingScore && days > keepFreshDays {
		return nil
	}

	return &streamingCandidate{
		item:     it,
		date:     date,
		days:     days,
		score:    score,
		details:  d,
		platform: primaryPlatform(rp),
	}
}

// isOTTOriginal reports whether any signal suggests a direct-to-streaming release.
func isOTTOriginal(d *tmdb.Details, rp tmdb.RegionProviders, days int) bool {
	subscription := len(rp.Flatrate) > 0 || len(rp.Ads) > 0

	switch {
	case d.VoteCount < lowVoteThreshold:
		return true
	case subscription && len(rp.Rent) == 0 && len(rp.Buy) == 0:
		return true
	case hasStreamingStudio(d.Companies):
		return true
	case days <= recentReleaseDays && (subscription || len(rp.Free) > 0):
		return true
	}
	return false
}

func hasStreamingStudio(companies []tmdb.Company) bool {
	for _, c := range companies {
		name := strings.ToLower(c.Name)
		for _, fragment := range streamingStudios {
			if strings.Contains(name, fragment) {
				return true
			}
		}
	}
	return false
}

// streamingScore rates a qualifying release in [1,10].
func streamingScore(it domain.ContentItem, rp tmdb.RegionProviders, days int) int {
	score := 5

	switch {
	case days <= 3:
		score += 4
	case days <= 7:
		score += 3
	case days <= 14:
		score += 2
	case days <= 30:
		score++
	}

	switch {
	case it.Popularity > 100:
		score += 2
	case it.Popularity > 50:
		score++
	}

	if it.VoteCount > 500 && it.VoteAverage >= 7.0 {
		score++
	}

	if len(rp.Flatrate) > 0 {
		score++
		if distinctProviders(rp.Flatrate) > 1 {
			score++
		}
	}

	return clamp(score, minStreamingScore, maxStreamingScore)
}

func distinctProviders(providers []tmdb.Provider) int {
	seen := make(map[int]struct{}, len(providers))
	for _, p := range providers {
		seen[p.ProviderID] = struct{}{}
	}
	return len(seen)
}

// primaryPlatform names the first known platform in the subscription lists.
func primaryPlatform(rp tmdb.RegionProviders) string {
	for _, list := range [][]tmdb.Provider{rp.Flatrate, rp.Ads} {
		for _, p := range list {
			for _, known := range streamingPlatforms {
				if slices.Contains(known.ProviderIDs, p.ProviderID) {
					return known.Name
				}
			}
		}
	}
	return ""
}

// recencyTier buckets days since release so that every title in a fresher tier
// outranks every title in an older one.
func recencyTier(days int) int {
	switch {
	case days <= 3:
		return 0
	case days <= 7:
		return 1
	case days <= 14:
		return 2
	default:
		return 3
	}
}

// compareStreaming orders by score desc, recency tier, days asc, date desc,
// then popularity desc.
func compareStreaming(a, b streamingCandidate) int {
	if c := cmp.Compare(b.score, a.score); c != 0 {
		return c
	}
	if c := cmp.Compare(recencyTier(a.days), recencyTier(b.days)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.days, b.days); c != 0 {
		return c
	}
	if c := b.date.Compare(a.date); c != 0 {
		return c
	}
	return cmp.Compare(b.item.Popularity, a.item.Popularity)
}

// estimatedStreamingDate guesses when a title was added to streaming: the
// midpoint of its score band's day range before today, never before release.
func estimatedStreamingDate(score int, release, today time.Time) time.Time {
	var lo, hi int
	switch {
	case score >= 9:
		lo, hi = 0, 3
	case score >= 7:
		lo, hi = 3, 7
	default:
		lo, hi = 7, 14
	}

	estimate := today.AddDate(0, 0, -(lo+hi)/2)
	if estimate.Before(release) {
		return release
	}
	return estimate
}

func (c streamingCandidate) annotations(today time.Time) domain.Annotations {
	return domain.Annotations{
		FormattedReleaseDate:     FormatReleaseDate(c.item.Date),
		DaysSinceRelease:         domain.Ptr(c.days),
		IsRecentRelease:          domain.Ptr(c.days <= 30),
		StreamingReleaseScore:    domain.Ptr(c.score),
		PrimaryStreamingPlatform: c.platform,
		EstimatedStreamingDate:   estimatedStreamingDate(c.score, c.date, today).Format(displayDateLayout),
		StreamingDateEstimated:   true,
		Tagline:                  c.details.Tagline,
	}
}

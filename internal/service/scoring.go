package service

import (
	"time"

	"github.com/cinescope/cinescope-server/internal/domain"
)

const (
	minTrendingScore = 1
	maxTrendingScore = 100
)

// dedupe drops repeated (id, media type) pairs, keeping the first occurrence.
func dedupe(items []domain.ContentItem) []domain.ContentItem {
	seen := make(map[domain.Key]struct{}, len(items))
	out := make([]domain.ContentItem, 0, len(items))
	for _, it := range items {
		if _, dup := seen[it.Key()]; dup {
			continue
		}
		seen[it.Key()] = struct{}{}
		out = append(out, it)
	}
	return out
}

// trendingScore rates an item at 1-based rank in [1,100]. It is informational
// and never used to reorder the list.
func trendingScore(rank int, item domain.ContentItem, today time.Time) int {
	score := 100 - 5*rank

	switch {
	case item.Popularity > 100:
		score += 10
	case item.Popularity > 50:
		score += 5
	}

	switch {
	case item.VoteAverage >= 8.0 && item.VoteCount > 1000:
		score += 10
	case item.VoteAverage >= 7.0 && item.VoteCount > 500:
		score += 5
	}

	if date, ok := item.ParsedDate(); ok {
		if days := daysSince(date, today); days >= 0 {
			switch {
			case days <= 30:
				score += 15
			case days <= 90:
				score += 10
			case days <= 180:
				score += 5
			}
		}
	}

	return clamp(score, minTrendingScore, maxTrendingScore)
}

// rankTrending assigns trending_rank and trending_score to items already in
// display order.
func rankTrending(items []domain.ContentItem, today time.Time) []domain.RankedResult {
	out := make([]domain.RankedResult, len(items))
	for i, it := range items {
		rank := i + 1
		a := domain.Annotations{
			TrendingRank:         domain.Ptr(rank),
			TrendingScore:        domain.Ptr(trendingScore(rank, it, today)),
			FormattedReleaseDate: FormatReleaseDate(it.Date),
		}
		if date, ok := it.ParsedDate(); ok {
			days := daysSince(date, today)
			a.DaysSinceRelease = domain.Ptr(days)
			a.IsRecentRelease = domain.Ptr(days >= 0 && days <= 30)
		}
		out[i] = domain.RankedResult{Item: it, Annotations: a}
	}
	return out
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

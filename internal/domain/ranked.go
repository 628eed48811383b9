package domain

import "encoding/json"

// Annotations are the derived fields the aggregation layer attaches to an item.
// Unset fields are omitted from the response.
type Annotations struct {
	TrendingRank  *int `json:"trending_rank,omitempty"`
	TrendingScore *int `json:"trending_score,omitempty"`

	FormattedReleaseDate string `json:"formatted_release_date,omitempty"`
	IsUpcoming           *bool  `json:"is_upcoming,omitempty"`
	DaysUntilRelease     *int   `json:"days_until_release,omitempty"`
	DaysSinceRelease     *int   `json:"days_since_release,omitempty"`
	IsRecentRelease      *bool  `json:"is_recent_release,omitempty"`

	StreamingReleaseScore    *int   `json:"streaming_release_score,omitempty"`
	PrimaryStreamingPlatform string `json:"primary_streaming_platform,omitempty"`
	EstimatedStreamingDate   string `json:"estimated_streaming_date,omitempty"`
	StreamingDateEstimated   bool   `json:"streaming_date_estimated,omitempty"`

	Tagline string `json:"tagline,omitempty"`
}

// RankedResult is an item plus its annotations. It serializes flat, as the
// item's fields followed by the annotation fields.
type RankedResult struct {
	Item        ContentItem
	Annotations Annotations
}

// MarshalJSON flattens the item and its annotations into one object.
func (r RankedResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		itemJSON
		Annotations
	}{r.Item.wire(), r.Annotations})
}

// Page is one page of results with the provider's pagination counters.
type Page struct {
	Results      []RankedResult `json:"results"`
	TotalResults int            `json:"total_results"`
	TotalPages   int            `json:"total_pages"`
	Page         int            `json:"page"`
}

// PlainPage wraps unannotated items.
func PlainPage(items []ContentItem, page, totalPages, totalResults int) *Page {
	results := make([]RankedResult, len(items))
	for i, it := range items {
		results[i] = RankedResult{Item: it}
	}
	return &Page{
		Results:      results,
		TotalResults: totalResults,
		TotalPages:   totalPages,
		Page:         page,
	}
}

// Ptr returns a pointer to v. Used to populate optional annotation fields.
func Ptr[T any](v T) *T {
	return &v
}

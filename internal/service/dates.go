package service

import (
	"math"
	"time"

	"github.com/cinescope/cinescope-server/internal/domain"
)

const displayDateLayout = "January 2, 2006"

// FormatReleaseDate renders a provider date for display: "2024-06-15" becomes
// "June 15, 2024". A missing date is "TBA". Anything not in domain.DateLayout
// is echoed, matching what ContentItem.ParsedDate accepts.
func FormatReleaseDate(date string) string {
	if date == "" {
		return "TBA"
	}
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(displayDateLayout)
}

// startOfDay truncates t to midnight UTC of its UTC calendar day.
// Provider dates parse as UTC midnight, so comparisons are by calendar day.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysUntil is the ceiling of the day difference from today to date.
// It is negative for past dates.
func daysUntil(date, today time.Time) int {
	return int(math.Ceil(date.Sub(today).Hours() / 24))
}

// daysSince is the number of whole days from date to today.
// It is negative for future dates.
func daysSince(date, today time.Time) int {
	return int(math.Floor(today.Sub(date).Hours() / 24))
}

// annotateRelease fills the date annotations shared by every upcoming listing.
func annotateRelease(item domain.ContentItem, today time.Time) domain.Annotations {
	a := domain.Annotations{FormattedReleaseDate: FormatReleaseDate(item.Date)}
	if date, ok := item.ParsedDate(); ok {
		a.IsUpcoming = domain.Ptr(!date.Before(today))
		a.DaysUntilRelease = domain.Ptr(daysUntil(date, today))
	}
	return a
}

// compareDates orders by primary date ascending with undated items last.
func compareDates(a, b domain.ContentItem) int {
	da, okA := a.ParsedDate()
	db, okB := b.ParsedDate()
	switch {
	case okA && okB:
		return da.Compare(db)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}

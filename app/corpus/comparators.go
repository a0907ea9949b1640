package corpus

import (
	"time"

	"github.com/blogcomb/blogcomb/app/post"
)

// compareDates orders the most recent date first.
func compareDates(a, b time.Time) int {
	switch {
	case a.After(b):
		return -1
	case b.After(a):
		return 1
	default:
		return 0
	}
}

func isoDate(iso string, fallback time.Time) time.Time {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return fallback
	}
	return t
}

// CompareByDate is the main corpus ordering: event dates win over creation
// dates, event end dates break ties, creation dates settle the rest. The
// most recent post sorts first.
func CompareByDate(a, b *post.Post) int {
	am, bm := &a.Metadata, &b.Metadata

	if am.EventDateISO != "" || bm.EventDateISO != "" {
		aDate := am.Date
		if am.EventDateISO != "" {
			aDate = isoDate(am.EventDateISO, am.Date)
		}
		bDate := bm.Date
		if bm.EventDateISO != "" {
			bDate = isoDate(bm.EventDateISO, bm.Date)
		}
		if value := compareDates(aDate, bDate); value != 0 {
			return value
		}

		if am.EventEndDateISO != "" || bm.EventEndDateISO != "" {
			if am.EventEndDateISO != "" {
				aDate = isoDate(am.EventEndDateISO, aDate)
			}
			if bm.EventEndDateISO != "" {
				bDate = isoDate(bm.EventEndDateISO, bDate)
			}
			if value := compareDates(aDate, bDate); value != 0 {
				return value
			}
		}
	}

	return compareDates(am.Date, bm.Date)
}

// CompareByNewest orders by last update when available, falling back to the
// creation date. Used for feeds and the newest listing.
func CompareByNewest(a, b *post.Post) int {
	am, bm := &a.Metadata, &b.Metadata

	if am.LastUpdatedAt != nil || bm.LastUpdatedAt != nil {
		aDate := am.Date
		if am.LastUpdatedAt != nil {
			aDate = time.Unix(int64(*am.LastUpdatedAt), 0)
		}
		bDate := bm.Date
		if bm.LastUpdatedAt != nil {
			bDate = time.Unix(int64(*bm.LastUpdatedAt), 0)
		}
		if value := compareDates(aDate, bDate); value != 0 {
			return value
		}
	}

	return compareDates(am.Date, bm.Date)
}

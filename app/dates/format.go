package dates

import (
	"fmt"
	"time"
)

// FormatBlogPostDate renders a post creation date for display, e.g.
// "March 15, 2024". Only the gregorian calendar is supported; other locales
// fall back to English month names.
func FormatBlogPostDate(t time.Time, locale, calendar string) (string, error) {
	if calendar != "" && calendar != "gregory" {
		return "", fmt.Errorf("unsupported calendar %q for date formatting", calendar)
	}
	return t.UTC().Format("January 2, 2006"), nil
}

// FormatLastUpdated renders a last update timestamp in a short form, e.g.
// "Mar 15, 2024".
func FormatLastUpdated(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006")
}

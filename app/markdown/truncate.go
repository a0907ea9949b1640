package markdown

import (
	"regexp"
	"strings"
)

// HasTruncateMarker reports whether the body contains the truncate marker.
func HasTruncateMarker(marker *regexp.Regexp, content string) bool {
	return marker.MatchString(content)
}

// Truncate returns the preview part of the body, everything before the first
// truncate marker. Content without a marker is returned whole.
func Truncate(marker *regexp.Regexp, content string) string {
	loc := marker.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return strings.TrimSpace(content[:loc[0]])
}

// ReadingTime estimates reading time in minutes at 200 words per minute,
// counted on the raw markdown body.
func ReadingTime(content string) float64 {
	words := len(strings.Fields(content))
	return float64(words) / 200
}

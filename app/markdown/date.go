package markdown

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-1-2",
}

// DateValue converts a front matter date into a time. YAML typed dates
// decode as time.Time and pass through; strings are parsed as UTC.
func DateValue(v any) (time.Time, bool) {
	switch value := v.(type) {
	case time.Time:
		return value.UTC(), true
	case string:
		s := strings.TrimSpace(value)
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return t.UTC(), true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

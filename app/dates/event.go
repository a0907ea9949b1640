package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// monthNames is indexed by month number, so index 0 is a guard.
var monthNames = []string{
	"???",
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MakeDateISO expands a partial event date into a full UTC timestamp.
// Missing days default to the middle of the month and missing months to the
// middle of the year, so partial dates still sort near their intended
// position.
func MakeDateISO(value string) (string, error) {
	parts := strings.Split(value, "-")

	full := value
	switch len(parts) {
	case 3:
	case 2:
		full = value + "-15"
	case 1:
		full = value + "-07-01"
	default:
		return "", fmt.Errorf("invalid event date %q", value)
	}

	segments := strings.Split(full, "-")
	year, err := strconv.Atoi(segments[0])
	if err != nil {
		return "", fmt.Errorf("invalid event date %q: %w", value, err)
	}
	month, err := strconv.Atoi(segments[1])
	if err != nil {
		return "", fmt.Errorf("invalid event date %q: %w", value, err)
	}
	day, err := strconv.Atoi(segments[2])
	if err != nil {
		return "", fmt.Errorf("invalid event date %q: %w", value, err)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("invalid event date %q", value)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Format("2006-01-02T15:04:05.000Z"), nil
}

// FormatEventDate renders a partial event date for display. "1993-11-01"
// becomes "1 November 1993", "1993-11" becomes "November 1993" and "1993"
// stays "1993".
func FormatEventDate(value string) string {
	parts := strings.Split(value, "-")

	switch len(parts) {
	case 3:
		return fmt.Sprintf("%d %s %s", number(parts[2]), monthName(parts[1]), parts[0])
	case 2:
		return fmt.Sprintf("%s %s", monthName(parts[1]), parts[0])
	default:
		return parts[0]
	}
}

// FormatEventInterval renders a pair of partial event dates as a single
// interval, merging the shared year and month where possible.
func FormatEventInterval(start, end string) string {
	startParts := strings.Split(start, "-")
	endParts := strings.Split(end, "-")

	sameYear := startParts[0] == endParts[0]

	if sameYear && len(startParts) == 3 && len(endParts) == 3 && startParts[1] == endParts[1] {
		return fmt.Sprintf("%d - %d %s %s",
			number(startParts[2]), number(endParts[2]), monthName(startParts[1]), startParts[0])
	}

	if sameYear && len(startParts) >= 2 && len(endParts) >= 2 {
		var words []string
		if len(startParts) == 3 {
			words = append(words, strconv.Itoa(number(startParts[2])))
		}
		words = append(words, monthName(startParts[1]), "-")
		if len(endParts) == 3 {
			words = append(words, strconv.Itoa(number(endParts[2])))
		}
		words = append(words, monthName(endParts[1]), startParts[0])
		return strings.Join(words, " ")
	}

	return FormatEventDate(start) + " - " + FormatEventDate(end)
}

func monthName(part string) string {
	m := number(part)
	if m < 1 || m >= len(monthNames) {
		return monthNames[0]
	}
	return monthNames[m]
}

func number(part string) int {
	n, _ := strconv.Atoi(part)
	return n
}

// Package dates derives and formats the date metadata of blog posts.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateFileNameRe = regexp.MustCompile(`^(?P<folder>.*)(?P<date>\d{4}[-/]\d{1,2}[-/]\d{1,2})[-/]?(?P<text>.*?)(?:/index)?\.mdx?$`)
	fileSuffixRe   = regexp.MustCompile(`(?:/index)?\.mdx?$`)
)

// FileNameInfo is the date, text and slug extracted from a blog source path.
type FileNameInfo struct {
	Date *time.Time
	Text string
	Slug string
}

// ParseFileName extracts an optional date prefix from a content-relative
// source path. A source like "2024-03-15-welcome.md" yields the date
// 2024-03-15 and the slug "/2024/03/15/welcome"; sources without a date
// prefix keep their path as slug.
func ParseFileName(relPath string) FileNameInfo {
	match := dateFileNameRe.FindStringSubmatch(relPath)
	if match == nil {
		text := fileSuffixRe.ReplaceAllString(relPath, "")
		return FileNameInfo{Text: text, Slug: "/" + text}
	}

	folder := match[dateFileNameRe.SubexpIndex("folder")]
	dateStr := match[dateFileNameRe.SubexpIndex("date")]
	text := match[dateFileNameRe.SubexpIndex("text")]

	date := parseFileNameDate(dateStr)
	slugDate := strings.ReplaceAll(dateStr, "-", "/")

	return FileNameInfo{
		Date: &date,
		Text: text,
		Slug: "/" + slugDate + "/" + folder + text,
	}
}

func parseFileNameDate(value string) time.Time {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == '-' || r == '/'
	})
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Package post turns blog source files into fully derived posts.
package post

import (
	"time"

	"github.com/blogcomb/blogcomb/app/authors"
	"github.com/blogcomb/blogcomb/app/tags"
)

// ItemRef points at a neighboring post in reading order.
type ItemRef struct {
	Title     string `json:"title"`
	Permalink string `json:"permalink"`
}

// Metadata is the derived metadata of a single post.
type Metadata struct {
	Permalink         string           `json:"permalink"`
	EditURL           string           `json:"editUrl,omitempty"`
	Source            string           `json:"source"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Date              time.Time        `json:"date"`
	FormattedDate     string           `json:"formattedDate"`
	Tags              []tags.Tag       `json:"tags"`
	Authors           []authors.Author `json:"authors"`
	ReadingTime       *float64         `json:"readingTime,omitempty"`
	HasTruncateMarker bool             `json:"hasTruncateMarker"`
	FrontMatter       map[string]any   `json:"frontMatter"`
	Unlisted          bool             `json:"unlisted"`

	EventDateISO           string `json:"eventDateISO,omitempty"`
	EventEndDateISO        string `json:"eventEndDateISO,omitempty"`
	EventDateFormatted     string `json:"eventDateFormatted,omitempty"`
	EventIntervalFormatted string `json:"eventIntervalFormatted,omitempty"`

	LastUpdatedBy          *string  `json:"lastUpdatedBy,omitempty"`
	LastUpdatedAt          *float64 `json:"lastUpdatedAt,omitempty"`
	FormattedLastUpdatedAt string   `json:"formattedLastUpdatedAt,omitempty"`

	PrevItem *ItemRef `json:"prevItem,omitempty"`
	NextItem *ItemRef `json:"nextItem,omitempty"`
}

// Post is a fully ingested blog post.
type Post struct {
	ID       string   `json:"id"`
	Metadata Metadata `json:"metadata"`
	Content  string   `json:"-"`
}

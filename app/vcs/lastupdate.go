package vcs

import (
	"context"
	"log/slog"
	"time"

	"github.com/blogcomb/blogcomb/app/markdown"
)

// LastUpdateData is the optional last-update block of a post's metadata.
type LastUpdateData struct {
	LastUpdatedAt *float64 `json:"lastUpdatedAt,omitempty"`
	LastUpdatedBy *string  `json:"lastUpdatedBy,omitempty"`
}

// ReadLastUpdateData resolves the last update of a source file. Front matter
// overrides win; otherwise git history is queried in production builds while
// development builds use mock data to stay fast.
func ReadLastUpdateData(
	ctx context.Context,
	path string,
	showTime, showAuthor, production bool,
	fm *markdown.LastUpdateFrontMatter,
) LastUpdateData {
	if !showTime && !showAuthor {
		return LastUpdateData{}
	}

	var fmTimestamp *float64
	var fmAuthor string
	if fm != nil {
		fmAuthor = fm.Author
		if date, ok := markdown.DateValue(fm.Date); ok {
			ts := float64(date.Unix())
			fmTimestamp = &ts
		}
	}

	if fmAuthor != "" && fmTimestamp != nil {
		return LastUpdateData{LastUpdatedAt: fmTimestamp, LastUpdatedBy: &fmAuthor}
	}

	var author string
	var timestamp *float64
	if production {
		info, err := FileLastUpdate(ctx, path)
		if err != nil {
			slog.Warn("Failed to read last update from git", "file", path, "error", err)
		} else {
			author = info.Author
			ts := float64(info.Date.Unix())
			timestamp = &ts
		}
	} else {
		author = "Author"
		ts := float64(time.Now().Unix())
		timestamp = &ts
	}

	var out LastUpdateData
	if showAuthor {
		by := fmAuthor
		if by == "" {
			by = author
		}
		if by != "" {
			out.LastUpdatedBy = &by
		}
	}
	if showTime {
		at := fmTimestamp
		if at == nil {
			at = timestamp
		}
		out.LastUpdatedAt = at
	}
	return out
}

package corpus

import "github.com/blogcomb/blogcomb/app/post"

// ChronologyRecord summarizes an event post for the chronology timeline.
type ChronologyRecord struct {
	Interval        string `json:"interval"`
	Title           string `json:"title"`
	Permalink       string `json:"permalink"`
	IsInternational bool   `json:"isInternational"`
}

// ChronologyRecords lists one record per event post, in corpus order.
func ChronologyRecords(posts []*post.Post) []ChronologyRecord {
	var records []ChronologyRecord
	for _, p := range posts {
		if p.Metadata.EventIntervalFormatted == "" {
			continue
		}
		records = append(records, ChronologyRecord{
			Interval:        p.Metadata.EventIntervalFormatted,
			Title:           p.Metadata.Title,
			Permalink:       p.Metadata.Permalink,
			IsInternational: hasInternationalTag(p),
		})
	}
	return records
}

// hasInternationalTag checks the raw front matter tags, not the normalized
// tag objects, matching how the record was originally derived.
func hasInternationalTag(p *post.Post) bool {
	rawTags, ok := p.Metadata.FrontMatter["tags"].([]any)
	if !ok {
		return false
	}
	for _, t := range rawTags {
		if s, ok := t.(string); ok && s == "international" {
			return true
		}
	}
	return false
}

package feed

import (
	"encoding/json"
	"fmt"
	"time"
)

// JSON Feed version 1.1, https://www.jsonfeed.org/version/1.1/
type jsonFeed struct {
	Version     string     `json:"version"`
	Title       string     `json:"title"`
	HomePageURL string     `json:"home_page_url,omitempty"`
	FeedURL     string     `json:"feed_url,omitempty"`
	Description string     `json:"description,omitempty"`
	Items       []jsonItem `json:"items"`
}

type jsonItem struct {
	ID            string       `json:"id"`
	URL           string       `json:"url,omitempty"`
	Title         string       `json:"title,omitempty"`
	Summary       string       `json:"summary,omitempty"`
	ContentHTML   string       `json:"content_html,omitempty"`
	DatePublished string       `json:"date_published,omitempty"`
	Authors       []jsonAuthor `json:"authors,omitempty"`
	Tags          []string     `json:"tags,omitempty"`
}

type jsonAuthor struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

func (g *Generator) runJSON(items []Item) (string, error) {
	out := jsonFeed{
		Version:     "https://jsonfeed.org/version/1.1",
		Title:       g.cfg.BlogTitle,
		HomePageURL: g.blogURL(),
		FeedURL:     g.absoluteURL(fmt.Sprintf("/%s/feed.json", g.cfg.RouteBasePath)),
		Description: g.cfg.BlogDescription,
		Items:       make([]jsonItem, 0, len(items)),
	}

	for _, item := range items {
		entry := jsonItem{
			ID:            item.ID,
			URL:           item.Link,
			Title:         item.Title,
			Summary:       item.Description,
			ContentHTML:   item.ContentHTML,
			DatePublished: item.Date.Format(time.RFC3339),
			Tags:          item.Categories,
		}
		for _, a := range item.Authors {
			entry.Authors = append(entry.Authors, jsonAuthor{Name: a.Name, URL: a.URL})
		}
		out.Items = append(out.Items, entry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal json feed: %w", err)
	}
	return string(data), nil
}

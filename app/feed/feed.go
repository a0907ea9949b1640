// Package feed renders the blog corpus as RSS, Atom and JSON feeds.
package feed

import (
	"fmt"
	"time"

	"github.com/blogcomb/blogcomb/app/cfg"
	"github.com/blogcomb/blogcomb/app/corpus"
	"github.com/blogcomb/blogcomb/app/markdown"
	"github.com/blogcomb/blogcomb/app/post"
	"github.com/blogcomb/blogcomb/app/urls"
)

// Item is one feed entry, shared by all feed formats.
type Item struct {
	ID          string
	Title       string
	Link        string
	Description string
	ContentHTML string
	Date        time.Time
	Authors     []ItemAuthor
	Categories  []string
}

type ItemAuthor struct {
	Name string
	URL  string
}

// Generator renders feeds for a corpus.
type Generator struct {
	cfg *cfg.Cfg
}

func NewGenerator(c *cfg.Cfg) *Generator {
	return &Generator{cfg: c}
}

// Run renders the feed of the given type: "rss", "atom" or "json".
func (g *Generator) Run(feedType string, c *corpus.Corpus) (string, error) {
	items, err := g.feedItems(c)
	if err != nil {
		return "", err
	}

	switch feedType {
	case "rss":
		return g.runRSS(items), nil
	case "atom":
		return g.runAtom(items), nil
	case "json":
		return g.runJSON(items)
	default:
		return "", fmt.Errorf("unknown feed type %q", feedType)
	}
}

// FileName returns the conventional output file name for a feed type.
func FileName(feedType string) string {
	switch feedType {
	case "rss":
		return "rss.xml"
	case "atom":
		return "atom.xml"
	case "json":
		return "feed.json"
	default:
		return feedType + ".xml"
	}
}

// ContentType returns the MIME type a feed is served with.
func ContentType(feedType string) string {
	switch feedType {
	case "rss":
		return "application/rss+xml; charset=utf-8"
	case "atom":
		return "application/atom+xml; charset=utf-8"
	case "json":
		return "application/json; charset=utf-8"
	default:
		return "application/xml; charset=utf-8"
	}
}

// feedItems selects the listed posts in newest order, capped by the feed
// limit, with their bodies rendered to HTML.
func (g *Generator) feedItems(c *corpus.Corpus) ([]Item, error) {
	items := make([]Item, 0, g.cfg.FeedLimit)
	for _, p := range c.Newest {
		if p.Metadata.Unlisted {
			continue
		}
		if g.cfg.FeedLimit > 0 && len(items) >= g.cfg.FeedLimit {
			break
		}

		item, err := g.feedItem(p)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (g *Generator) feedItem(p *post.Post) (Item, error) {
	html, err := markdown.ToHTML(p.Content)
	if err != nil {
		return Item{}, fmt.Errorf("failed to render feed content for %s: %w", p.Metadata.Source, err)
	}

	item := Item{
		ID:          p.ID,
		Title:       p.Metadata.Title,
		Link:        g.absoluteURL(p.Metadata.Permalink),
		Description: p.Metadata.Description,
		ContentHTML: html,
		Date:        p.Metadata.Date,
	}
	for _, a := range p.Metadata.Authors {
		item.Authors = append(item.Authors, ItemAuthor{Name: a.Name, URL: a.URL})
	}
	for _, t := range p.Metadata.Tags {
		item.Categories = append(item.Categories, t.Label)
	}
	return item, nil
}

func (g *Generator) absoluteURL(permalink string) string {
	if g.cfg.SiteURL == "" {
		return permalink
	}
	return urls.Normalize(g.cfg.SiteURL, permalink)
}

func (g *Generator) blogURL() string {
	return g.absoluteURL(urls.Normalize(g.cfg.BaseURL, g.cfg.RouteBasePath))
}

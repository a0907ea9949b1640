package output

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/blogcomb/blogcomb/app/cfg"
	"github.com/blogcomb/blogcomb/app/corpus"
	"github.com/blogcomb/blogcomb/app/feed"
	"github.com/blogcomb/blogcomb/app/post"
	"github.com/blogcomb/blogcomb/app/urls"
)

// SidebarItem is one entry of the recent posts sidebar blob.
type SidebarItem struct {
	Title     string `json:"title"`
	Permalink string `json:"permalink"`
	Unlisted  bool   `json:"unlisted"`
}

type sidebarBlob struct {
	Title string        `json:"title"`
	Items []SidebarItem `json:"items"`
}

type archiveBlob struct {
	BlogPosts []*post.Post `json:"blogPosts"`
}

// Writer serializes the corpus: per-post metadata blobs, listing pages,
// groupings and feed files.
type Writer struct {
	cfg       *cfg.Cfg
	generator *feed.Generator
}

func NewWriter(c *cfg.Cfg) *Writer {
	return &Writer{cfg: c, generator: feed.NewGenerator(c)}
}

// Run writes the full output tree under the configured output directory.
func (w *Writer) Run(c *corpus.Corpus) error {
	startedAt := time.Now()
	dataDir := filepath.Join(w.cfg.OutDir, "data")

	for _, dir := range []string{
		filepath.Join(dataDir, "posts"),
		filepath.Join(dataDir, "pages"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	for _, p := range c.Posts {
		name := filepath.Join(dataDir, "posts", Hash(p.Metadata.Source)+".json")
		if err := w.writeJSON(name, p.Metadata); err != nil {
			return err
		}
	}

	for _, page := range c.ListPaginated {
		if err := w.writePage(dataDir, page); err != nil {
			return err
		}
	}
	for _, tag := range c.Tags {
		for _, page := range tag.Pages {
			if err := w.writePage(dataDir, page); err != nil {
				return err
			}
		}
	}
	for _, author := range c.Authors {
		for _, page := range author.Pages {
			if err := w.writePage(dataDir, page); err != nil {
				return err
			}
		}
	}

	sidebar := sidebarBlob{Title: c.SidebarTitle}
	for _, p := range c.SidebarItems(w.cfg.SidebarCount, w.cfg.SidebarCountAll) {
		sidebar.Items = append(sidebar.Items, SidebarItem{
			Title:     p.Metadata.Title,
			Permalink: p.Metadata.Permalink,
			Unlisted:  p.Metadata.Unlisted,
		})
	}
	if err := w.writeJSON(filepath.Join(dataDir, "blog-post-list-prop.json"), sidebar); err != nil {
		return err
	}

	if err := w.writeJSON(filepath.Join(dataDir, "tags.json"), c.Tags); err != nil {
		return err
	}
	if err := w.writeJSON(filepath.Join(dataDir, "authors.json"), c.Authors); err != nil {
		return err
	}
	if err := w.writeJSON(filepath.Join(dataDir, "chronology.json"), c.Chronology); err != nil {
		return err
	}

	if w.cfg.ArchiveBasePath != "" && len(c.Listed) > 0 {
		archiveURL := urls.Normalize(w.cfg.BaseURL, w.cfg.RouteBasePath, w.cfg.ArchiveBasePath)
		name := filepath.Join(dataDir, Hash(archiveURL)+".json")
		if err := w.writeJSON(name, archiveBlob{BlogPosts: c.Listed}); err != nil {
			return err
		}
	}

	if err := w.writeFeeds(c); err != nil {
		return err
	}

	slog.Info("Output written", "dir", w.cfg.OutDir, "elapsed", time.Since(startedAt))
	return nil
}

func (w *Writer) writePage(dataDir string, page corpus.Page) error {
	name := filepath.Join(dataDir, "pages", Hash(page.Metadata.Permalink)+".json")
	return w.writeJSON(name, page)
}

func (w *Writer) writeFeeds(c *corpus.Corpus) error {
	feedDir := filepath.Join(w.cfg.OutDir, w.cfg.RouteBasePath)
	if err := os.MkdirAll(feedDir, 0o755); err != nil {
		return fmt.Errorf("failed to create feed directory %s: %w", feedDir, err)
	}

	for _, feedType := range w.cfg.FeedTypes {
		content, err := w.generator.Run(feedType, c)
		if err != nil {
			return err
		}
		name := filepath.Join(feedDir, feed.FileName(feedType))
		if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write feed file %s: %w", name, err)
		}
	}
	return nil
}

func (w *Writer) writeJSON(name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

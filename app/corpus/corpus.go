package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blogcomb/blogcomb/app/cfg"
	"github.com/blogcomb/blogcomb/app/post"
	"github.com/blogcomb/blogcomb/app/urls"
)

// Corpus is the fully derived blog content: every post with its metadata,
// the orderings, listings and groupings the output layer serializes.
type Corpus struct {
	SidebarTitle      string
	Posts             []*post.Post
	Listed            []*post.Post
	Newest            []*post.Post
	ListPaginated     []Page
	Tags              map[string]*BlogTag
	TagsListPath      string
	Authors           map[string]*BlogAuthor
	AuthorsListPath   string
	Chronology        []ChronologyRecord
	SourceToPermalink map[string]string
	BuiltAt           time.Time
}

// Builder produces a Corpus from the configured content directories.
type Builder struct {
	cfg      *cfg.Cfg
	ingester *post.Ingester
}

func NewBuilder(c *cfg.Cfg, ingester *post.Ingester) *Builder {
	return &Builder{cfg: c, ingester: ingester}
}

// Build discovers, ingests, orders and groups all blog posts. The result is
// derived from the sources alone, so building twice over the same tree
// yields the same corpus.
func (b *Builder) Build(ctx context.Context) (*Corpus, error) {
	startedAt := time.Now()

	baseBlogURL := urls.Normalize(b.cfg.BaseURL, b.cfg.RouteBasePath)
	corpus := &Corpus{
		SidebarTitle:      b.cfg.SidebarTitle,
		Tags:              map[string]*BlogTag{},
		TagsListPath:      urls.Normalize(baseBlogURL, b.cfg.TagsBasePath),
		Authors:           map[string]*BlogAuthor{},
		AuthorsListPath:   urls.Normalize(baseBlogURL, b.cfg.AuthorsBasePath),
		SourceToPermalink: map[string]string{},
		BuiltAt:           startedAt,
	}

	sources, err := DiscoverSources(b.ingester.ContentDirs(), b.cfg.Include, b.cfg.Exclude)
	if err != nil {
		return nil, err
	}

	posts, err := b.ingestAll(ctx, sources)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		slog.Info("Corpus built", "posts", 0, "elapsed", time.Since(startedAt))
		return corpus, nil
	}

	if err := checkPermalinkCollisions(posts); err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return CompareByDate(posts[i], posts[j]) < 0
	})
	if !b.cfg.SortDescending() {
		reverse(posts)
	}

	newest := make([]*post.Post, len(posts))
	copy(newest, posts)
	sort.SliceStable(newest, func(i, j int) bool {
		return CompareByNewest(newest[i], newest[j]) < 0
	})

	listed := make([]*post.Post, 0, len(posts))
	for _, p := range posts {
		if !p.Metadata.Unlisted {
			listed = append(listed, p)
		}
	}
	linkNeighbors(listed)

	params := PaginateParams{
		BlogTitle:       b.cfg.BlogTitle,
		BlogDescription: b.cfg.BlogDescription,
		PostsPerPage:    b.cfg.PostsPerPage,
		AllPosts:        b.cfg.PostsPerPageAll,
		PageBasePath:    b.cfg.PageBasePath,
	}

	listParams := params
	listParams.BasePageURL = baseBlogURL

	corpus.Posts = posts
	corpus.Listed = listed
	corpus.Newest = newest
	corpus.ListPaginated = Paginate(listed, listParams)
	corpus.Tags = BlogTags(posts, params)
	corpus.Authors = BlogAuthors(posts, params)
	corpus.Chronology = ChronologyRecords(posts)

	for _, p := range posts {
		corpus.SourceToPermalink[p.Metadata.Source] = p.Metadata.Permalink
	}

	slog.Info("Corpus built", "posts", len(posts), "listed", len(listed), "elapsed", time.Since(startedAt))
	return corpus, nil
}

// SidebarItems returns the first posts of the corpus for the recent posts
// sidebar.
func (c *Corpus) SidebarItems(count int, all bool) []*post.Post {
	if all || count >= len(c.Posts) {
		return c.Posts
	}
	return c.Posts[:count]
}

func (b *Builder) ingestAll(ctx context.Context, sources []string) ([]*post.Post, error) {
	results := make([]*post.Post, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.WorkerCount)

	for i, source := range sources {
		g.Go(func() error {
			p, err := b.ingester.Ingest(gctx, source)
			if err != nil {
				return err
			}
			if p == nil {
				slog.Debug("Skipped draft", "source", source)
				return nil
			}
			results[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	posts := make([]*post.Post, 0, len(results))
	for _, p := range results {
		if p != nil {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func checkPermalinkCollisions(posts []*post.Post) error {
	bySource := make(map[string]string, len(posts))
	for _, p := range posts {
		if other, ok := bySource[p.Metadata.Permalink]; ok {
			return fmt.Errorf("permalink collision at %s between %s and %s",
				p.Metadata.Permalink, other, p.Metadata.Source)
		}
		bySource[p.Metadata.Permalink] = p.Metadata.Source
	}
	return nil
}

// linkNeighbors wires prev/next references across the listed posts in
// reading order. The previous item is the more recent one.
func linkNeighbors(listed []*post.Post) {
	for i, p := range listed {
		if i > 0 {
			prev := listed[i-1]
			p.Metadata.PrevItem = &post.ItemRef{
				Title:     prev.Metadata.Title,
				Permalink: prev.Metadata.Permalink,
			}
		}
		if i < len(listed)-1 {
			next := listed[i+1]
			p.Metadata.NextItem = &post.ItemRef{
				Title:     next.Metadata.Title,
				Permalink: next.Metadata.Permalink,
			}
		}
	}
}

func reverse(posts []*post.Post) {
	for i, j := 0, len(posts)-1; i < j; i, j = i+1, j-1 {
		posts[i], posts[j] = posts[j], posts[i]
	}
}

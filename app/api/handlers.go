package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blogcomb/blogcomb/app/cfg"
	"github.com/blogcomb/blogcomb/app/corpus"
	"github.com/blogcomb/blogcomb/app/feed"
)

func NewHandler(c *cfg.Cfg, builder *corpus.Builder, built *corpus.Corpus) *Handler {
	return &Handler{
		cfg:       c,
		builder:   builder,
		generator: feed.NewGenerator(c),
		corpus:    built,
	}
}

func (h *Handler) Version() string {
	return h.cfg.Version
}

func (h *Handler) current() *corpus.Corpus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.corpus
}

// GetFeed renders a feed on the fly from the current corpus. The type
// parameter accepts both bare names ("rss") and file names ("rss.xml").
func (h *Handler) GetFeed(c *gin.Context) {
	feedType := c.Param("type")
	feedType = strings.TrimSuffix(strings.TrimSuffix(feedType, ".xml"), ".json")
	if feedType == "feed" {
		feedType = "json"
	}

	content, err := h.generator.Run(feedType, h.current())
	if err != nil {
		slog.Error("Feed generation error", "type", feedType, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, feed.ContentType(feedType), []byte(content))
}

func (h *Handler) ListPosts(c *gin.Context) {
	cps := h.current()

	posts := make([]any, 0, len(cps.Posts))
	for _, p := range cps.Posts {
		posts = append(posts, p.Metadata)
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"total": len(posts),
	})
}

func (h *Handler) GetPostByPermalink(c *gin.Context) {
	permalink := c.Param("permalink")

	for _, p := range h.current().Posts {
		if p.Metadata.Permalink == permalink {
			c.JSON(http.StatusOK, p.Metadata)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Post not found", "permalink": permalink})
}

func (h *Handler) ListPages(c *gin.Context) {
	cps := h.current()

	c.JSON(http.StatusOK, gin.H{
		"pages": cps.ListPaginated,
		"total": len(cps.ListPaginated),
	})
}

func (h *Handler) ListTags(c *gin.Context) {
	cps := h.current()

	c.JSON(http.StatusOK, gin.H{
		"tagsListPath": cps.TagsListPath,
		"tags":         cps.Tags,
	})
}

func (h *Handler) ListAuthors(c *gin.Context) {
	cps := h.current()

	c.JSON(http.StatusOK, gin.H{
		"authorsListPath": cps.AuthorsListPath,
		"authors":         cps.Authors,
	})
}

func (h *Handler) GetChronology(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"chronologyRecords": h.current().Chronology})
}

func (h *Handler) GetSidebar(c *gin.Context) {
	cps := h.current()
	recent := cps.SidebarItems(h.cfg.SidebarCount, h.cfg.SidebarCountAll)

	items := make([]gin.H, 0, len(recent))
	for _, p := range recent {
		items = append(items, gin.H{
			"title":     p.Metadata.Title,
			"permalink": p.Metadata.Permalink,
			"unlisted":  p.Metadata.Unlisted,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"title": cps.SidebarTitle,
		"items": items,
	})
}

// Rebuild re-reads the content tree and swaps in the new corpus.
func (h *Handler) Rebuild(c *gin.Context) {
	built, err := h.builder.Build(c.Request.Context())
	if err != nil {
		slog.Error("Corpus rebuild error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	h.corpus = built
	h.mu.Unlock()

	slog.Info("Corpus rebuilt", "posts", len(built.Posts))

	c.JSON(http.StatusOK, gin.H{
		"status": "rebuilt",
		"posts":  len(built.Posts),
	})
}

func (h *Handler) HealthCheck(c *gin.Context) {
	cps := h.current()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   h.cfg.Version,
		"posts":     len(cps.Posts),
		"built_at":  cps.BuiltAt.Format(time.RFC3339),
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	})
}

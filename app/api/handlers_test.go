package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/blogcomb/blogcomb/app/cfg"
	"github.com/blogcomb/blogcomb/app/corpus"
	"github.com/blogcomb/blogcomb/app/post"
)

func newTestServer(t *testing.T) (*cfg.Cfg, http.Handler, string) {
	t.Helper()

	dir := t.TempDir()
	blogDir := filepath.Join(dir, "blog")
	if err := os.MkdirAll(blogDir, 0o755); err != nil {
		t.Fatal(err)
	}

	c := &cfg.Cfg{
		Path:            blogDir,
		SiteDir:         dir,
		Include:         []string{"**/*.md"},
		BaseURL:         "/",
		SiteURL:         "https://example.com",
		RouteBasePath:   "blog",
		TagsBasePath:    "tags",
		AuthorsBasePath: "authors",
		PageBasePath:    "page",
		BlogTitle:       "Blog",
		BlogDescription: "Blog",
		SidebarTitle:    "Recent posts",
		PostsPerPage:    10,
		SidebarCount:    5,
		SortPosts:       "descending",
		TruncateMarker:  regexp.MustCompile(`<!--\s*truncate\s*-->`),
		Locale:          "en",
		Calendar:        "gregory",
		FeedTypes:       []string{"rss", "atom", "json"},
		FeedLimit:       20,
		WorkerCount:     2,
		Version:         "test",
	}

	posts := map[string]string{
		"2024-03-15-welcome.md": "---\ntitle: Welcome\ndate: 2024-03-15\ntags:\n  - hello\n---\nFirst post.\n",
		"2024-04-01-update.md":  "---\ntitle: Update\ndate: 2024-04-01\n---\nSecond post.\n",
	}
	for name, source := range posts {
		if err := os.WriteFile(filepath.Join(blogDir, name), []byte(source), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	builder := corpus.NewBuilder(c, post.NewIngester(c, nil))
	built, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	return c, NewServer(NewHandler(c, builder, built)), blogDir
}

func getJSON(t *testing.T, server http.Handler, path string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	body := map[string]any{}
	if w.Code == http.StatusOK || strings.Contains(w.Header().Get("Content-Type"), "json") {
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("GET %s: response does not parse: %v", path, err)
		}
	}
	return w.Code, body
}

func TestListPosts(t *testing.T) {
	_, server, _ := newTestServer(t)

	code, body := getJSON(t, server, "/posts")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["total"].(float64) != 2 {
		t.Errorf("expected 2 posts, got %v", body["total"])
	}

	posts := body["posts"].([]any)
	first := posts[0].(map[string]any)
	if first["title"] != "Update" {
		t.Errorf("expected most recent post first, got %v", first["title"])
	}
}

func TestGetPostByPermalink(t *testing.T) {
	_, server, _ := newTestServer(t)

	code, body := getJSON(t, server, "/posts/blog/2024/03/15/welcome")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["title"] != "Welcome" {
		t.Errorf("unexpected title %v", body["title"])
	}

	code, _ = getJSON(t, server, "/posts/blog/missing")
	if code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown permalink, got %d", code)
	}
}

func TestGetFeed(t *testing.T) {
	_, server, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/feeds/rss.xml", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "application/rss+xml") {
		t.Errorf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "<title>Welcome</title>") {
		t.Errorf("feed does not contain post title")
	}

	code, _ := getJSON(t, server, "/feeds/opml")
	if code != http.StatusNotFound {
		t.Errorf("expected 404 for unsupported feed type, got %d", code)
	}
}

func TestListTags(t *testing.T) {
	_, server, _ := newTestServer(t)

	code, body := getJSON(t, server, "/tags")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["tagsListPath"] != "/blog/tags" {
		t.Errorf("unexpected tags list path %v", body["tagsListPath"])
	}

	tags := body["tags"].(map[string]any)
	if _, ok := tags["/blog/tags/hello"]; !ok {
		t.Errorf("expected hello tag group, got %v", tags)
	}
}

func TestGetSidebar(t *testing.T) {
	_, server, _ := newTestServer(t)

	code, body := getJSON(t, server, "/sidebar")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["title"] != "Recent posts" {
		t.Errorf("unexpected sidebar title %v", body["title"])
	}
	if len(body["items"].([]any)) != 2 {
		t.Errorf("expected 2 sidebar items, got %v", body["items"])
	}
}

func TestRebuildPicksUpNewPosts(t *testing.T) {
	_, server, blogDir := newTestServer(t)

	source := "---\ntitle: Later\ndate: 2024-05-01\n---\nThird post.\n"
	if err := os.WriteFile(filepath.Join(blogDir, "2024-05-01-later.md"), []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", "/rebuild", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("rebuild failed with %d: %s", w.Code, w.Body.String())
	}

	code, body := getJSON(t, server, "/posts")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["total"].(float64) != 3 {
		t.Errorf("expected 3 posts after rebuild, got %v", body["total"])
	}
}

func TestHealthCheck(t *testing.T) {
	_, server, _ := newTestServer(t)

	code, body := getJSON(t, server, "/health")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected status %v", body["status"])
	}
	if body["posts"].(float64) != 2 {
		t.Errorf("unexpected post count %v", body["posts"])
	}
}

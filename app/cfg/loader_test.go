package cfg

import (
	"testing"
)

func defaultRaw() *rawCfg {
	return &rawCfg{
		Path:            "blog",
		SiteDir:         ".",
		AuthorsMapPath:  "authors.yml",
		BaseURL:         "/",
		RouteBasePath:   "blog",
		TagsBasePath:    "tags",
		AuthorsBasePath: "authors",
		PageBasePath:    "page",
		ArchiveBasePath: "archive",
		BlogTitle:       "Blog",
		BlogDescription: "Blog",
		SidebarTitle:    "Recent posts",
		PostsPerPage:    "10",
		SidebarCount:    "5",
		SortPosts:       "descending",
		FeedLimit:       20,
		OutDir:          "./build",
		Port:            "8080",
		WorkerCount:     5,
	}
}

func TestBuildDefaults(t *testing.T) {
	cfg, err := build(defaultRaw())
	if err != nil {
		t.Fatalf("build() error: %v", err)
	}

	if cfg.PostsPerPage != 10 || cfg.PostsPerPageAll {
		t.Errorf("expected posts per page 10, got %d (all=%v)", cfg.PostsPerPage, cfg.PostsPerPageAll)
	}
	if cfg.SidebarCount != 5 || cfg.SidebarCountAll {
		t.Errorf("expected sidebar count 5, got %d (all=%v)", cfg.SidebarCount, cfg.SidebarCountAll)
	}
	if len(cfg.Include) != 2 || cfg.Include[0] != "**/*.md" {
		t.Errorf("unexpected include defaults: %v", cfg.Include)
	}
	if len(cfg.FeedTypes) != 2 || cfg.FeedTypes[0] != "rss" || cfg.FeedTypes[1] != "atom" {
		t.Errorf("unexpected feed type defaults: %v", cfg.FeedTypes)
	}
	if !cfg.ShowReadingTime {
		t.Errorf("expected reading time enabled by default")
	}
	if !cfg.SortDescending() {
		t.Errorf("expected descending sort by default")
	}
}

func TestBuildTruncateMarker(t *testing.T) {
	cfg, err := build(defaultRaw())
	if err != nil {
		t.Fatalf("build() error: %v", err)
	}

	for _, marker := range []string{"<!-- truncate -->", "<!--truncate-->", "{/* truncate */}"} {
		if !cfg.TruncateMarker.MatchString(marker) {
			t.Errorf("expected default marker to match %q", marker)
		}
	}
	if cfg.TruncateMarker.MatchString("truncate") {
		t.Errorf("bare word should not match the default marker")
	}
}

func TestParseCount(t *testing.T) {
	n, all, err := parseCount("posts-per-page", "ALL")
	if err != nil || !all || n != 0 {
		t.Errorf("parseCount(ALL) = %d, %v, %v", n, all, err)
	}

	n, all, err = parseCount("posts-per-page", "7")
	if err != nil || all || n != 7 {
		t.Errorf("parseCount(7) = %d, %v, %v", n, all, err)
	}

	if _, _, err := parseCount("posts-per-page", "0"); err == nil {
		t.Errorf("expected error for zero count")
	}
	if _, _, err := parseCount("posts-per-page", "abc"); err == nil {
		t.Errorf("expected error for non-numeric count")
	}
}

func TestBuildReadingTimeFlags(t *testing.T) {
	raw := defaultRaw()
	raw.ShowReadingTime = true
	cfg, err := build(raw)
	if err != nil {
		t.Fatalf("build() error: %v", err)
	}
	if !cfg.ShowReadingTime {
		t.Errorf("expected reading time enabled with show-reading-time")
	}

	raw = defaultRaw()
	raw.HideReadingTime = true
	cfg, err = build(raw)
	if err != nil {
		t.Fatalf("build() error: %v", err)
	}
	if cfg.ShowReadingTime {
		t.Errorf("expected reading time disabled with hide-reading-time")
	}

	raw = defaultRaw()
	raw.ShowReadingTime = true
	raw.HideReadingTime = true
	if _, err := build(raw); err == nil {
		t.Errorf("expected error when both reading time flags are set")
	}
}

func TestValidateFeedTypes(t *testing.T) {
	raw := defaultRaw()
	raw.FeedTypes = []string{"rss", "scroll"}

	if _, err := build(raw); err == nil {
		t.Errorf("expected error for unknown feed type")
	}
}

package cfg

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

// DefaultTruncateMarker splits a post body into preview and remainder.
const DefaultTruncateMarker = `<!--\s*truncate\s*-->|\{/\*\s*truncate\s*\*/\}`

type rawCfg struct {
	// Content configuration
	Path           string   `long:"path" env:"BLOG_PATH" default:"blog" description:"Directory containing blog source files, relative to the site directory"`
	LocalizedPath  string   `long:"localized-path" env:"BLOG_LOCALIZED_PATH" description:"Optional localized content directory, takes priority over --path"`
	SiteDir        string   `long:"site-dir" env:"SITE_DIR" default:"." description:"Site root directory"`
	Include        []string `long:"include" env:"BLOG_INCLUDE" env-delim:"," description:"Glob patterns for source files (default **/*.md, **/*.mdx)"`
	Exclude        []string `long:"exclude" env:"BLOG_EXCLUDE" env-delim:"," description:"Glob patterns excluded from sources (default underscore-prefixed files and directories)"`
	AuthorsMapPath string   `long:"authors-map-path" env:"AUTHORS_MAP_PATH" default:"authors.yml" description:"Authors map file, relative to the content directory"`

	// Routing configuration
	BaseURL         string `long:"base-url" env:"BASE_URL" default:"/" description:"Base URL prefix for all generated routes"`
	SiteURL         string `long:"site-url" env:"SITE_URL" description:"Public site URL used in feeds (e.g. https://example.com)"`
	RouteBasePath   string `long:"route-base-path" env:"ROUTE_BASE_PATH" default:"blog" description:"URL route for the blog section"`
	TagsBasePath    string `long:"tags-base-path" env:"TAGS_BASE_PATH" default:"tags" description:"URL route for tag pages, relative to the blog route"`
	AuthorsBasePath string `long:"authors-base-path" env:"AUTHORS_BASE_PATH" default:"authors" description:"URL route for author pages, relative to the blog route"`
	PageBasePath    string `long:"page-base-path" env:"PAGE_BASE_PATH" default:"page" description:"URL segment for paginated listing pages"`
	ArchiveBasePath string `long:"archive-base-path" env:"ARCHIVE_BASE_PATH" default:"archive" description:"URL route for the archive page"`

	// Listing configuration
	BlogTitle       string `long:"blog-title" env:"BLOG_TITLE" default:"Blog" description:"Blog title used in listing metadata and feeds"`
	BlogDescription string `long:"blog-description" env:"BLOG_DESCRIPTION" default:"Blog" description:"Blog description used in listing metadata and feeds"`
	SidebarTitle    string `long:"sidebar-title" env:"SIDEBAR_TITLE" default:"Recent posts" description:"Title of the recent posts sidebar"`
	PostsPerPage    string `long:"posts-per-page" env:"POSTS_PER_PAGE" default:"10" description:"Posts per listing page, or ALL for a single page"`
	SidebarCount    string `long:"sidebar-count" env:"SIDEBAR_COUNT" default:"5" description:"Number of posts in the sidebar blob, or ALL"`
	SortPosts       string `long:"sort-posts" env:"SORT_POSTS" default:"descending" choice:"descending" choice:"ascending" description:"Reading order of the corpus"`

	// Post metadata configuration
	ShowReadingTime      bool   `long:"show-reading-time" env:"SHOW_READING_TIME" description:"Compute estimated reading time per post"`
	HideReadingTime      bool   `long:"hide-reading-time" env:"HIDE_READING_TIME" description:"Disable the reading time estimate (enabled by default)"`
	ShowLastUpdateTime   bool   `long:"show-last-update-time" env:"SHOW_LAST_UPDATE_TIME" description:"Include last update timestamps in post metadata"`
	ShowLastUpdateAuthor bool   `long:"show-last-update-author" env:"SHOW_LAST_UPDATE_AUTHOR" description:"Include last update authors in post metadata"`
	TruncateMarker       string `long:"truncate-marker" env:"TRUNCATE_MARKER" description:"Regexp marking the end of a post preview"`
	EditURL              string `long:"edit-url" env:"EDIT_URL" description:"Base URL for per-post edit links"`
	EditLocalizedFiles   bool   `long:"edit-localized-files" env:"EDIT_LOCALIZED_FILES" description:"Point edit links at localized files when present"`
	Locale               string `long:"locale" env:"LOCALE" default:"en" description:"Locale used for formatted dates"`
	Calendar             string `long:"calendar" env:"CALENDAR" default:"gregory" description:"Calendar system used for formatted dates"`

	// Feed configuration
	FeedTypes []string `long:"feed-types" env:"FEED_TYPES" env-delim:"," description:"Feed files to generate (rss, atom, json; default rss, atom)"`
	FeedLimit int      `long:"feed-limit" env:"FEED_LIMIT" default:"20" description:"Maximum number of posts per feed"`

	// Application configuration
	OutDir      string `long:"out-dir" env:"OUT_DIR" default:"./build" description:"Output directory for generated metadata and feed files"`
	Port        string `long:"port" env:"PORT" default:"8080" description:"Preview server port"`
	WorkerCount int    `long:"worker-count" env:"WORKER_COUNT" default:"5" description:"Number of concurrent source file ingestions"`
	Production  bool   `long:"production" env:"PRODUCTION" description:"Production build (queries real last-update data)"`
	Debug       bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses configuration from command-line flags and environment
// variables, returning the remaining positional arguments. A nil Cfg with a
// nil error means help was requested.
func Load() (*Cfg, []string, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	args, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil, nil
			}
		}
		return nil, nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg, err := build(&raw)
	if err != nil {
		return nil, nil, err
	}

	return cfg, args, nil
}

func build(raw *rawCfg) (*Cfg, error) {
	if raw.ShowReadingTime && raw.HideReadingTime {
		return nil, fmt.Errorf("show-reading-time and hide-reading-time are mutually exclusive")
	}

	cfg := &Cfg{
		Path:                 raw.Path,
		LocalizedPath:        raw.LocalizedPath,
		SiteDir:              raw.SiteDir,
		Include:              raw.Include,
		Exclude:              raw.Exclude,
		AuthorsMapPath:       raw.AuthorsMapPath,
		BaseURL:              raw.BaseURL,
		SiteURL:              raw.SiteURL,
		RouteBasePath:        raw.RouteBasePath,
		TagsBasePath:         raw.TagsBasePath,
		AuthorsBasePath:      raw.AuthorsBasePath,
		PageBasePath:         raw.PageBasePath,
		ArchiveBasePath:      raw.ArchiveBasePath,
		BlogTitle:            raw.BlogTitle,
		BlogDescription:      raw.BlogDescription,
		SidebarTitle:         raw.SidebarTitle,
		SortPosts:            raw.SortPosts,
		ShowReadingTime:      !raw.HideReadingTime,
		ShowLastUpdateTime:   raw.ShowLastUpdateTime,
		ShowLastUpdateAuthor: raw.ShowLastUpdateAuthor,
		EditURL:              raw.EditURL,
		EditLocalizedFiles:   raw.EditLocalizedFiles,
		Locale:               raw.Locale,
		Calendar:             raw.Calendar,
		FeedTypes:            raw.FeedTypes,
		FeedLimit:            raw.FeedLimit,
		OutDir:               raw.OutDir,
		Port:                 raw.Port,
		WorkerCount:          raw.WorkerCount,
		Production:           raw.Production,
		Debug:                raw.Debug,
		Version:              GetVersion(),
	}

	setDefaults(cfg)

	var err error
	cfg.PostsPerPage, cfg.PostsPerPageAll, err = parseCount("posts-per-page", raw.PostsPerPage)
	if err != nil {
		return nil, err
	}
	cfg.SidebarCount, cfg.SidebarCountAll, err = parseCount("sidebar-count", raw.SidebarCount)
	if err != nil {
		return nil, err
	}

	marker := raw.TruncateMarker
	if marker == "" {
		marker = DefaultTruncateMarker
	}
	cfg.TruncateMarker, err = regexp.Compile(marker)
	if err != nil {
		return nil, fmt.Errorf("invalid truncate marker %q: %w", marker, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(cfg *Cfg) {
	if len(cfg.Include) == 0 {
		cfg.Include = []string{"**/*.md", "**/*.mdx"}
	}
	if len(cfg.Exclude) == 0 {
		cfg.Exclude = []string{"**/_*.{md,mdx}", "**/_*/**", "**/__tests__/**"}
	}
	if len(cfg.FeedTypes) == 0 {
		cfg.FeedTypes = []string{"rss", "atom"}
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 5
	}
}

func validate(cfg *Cfg) error {
	if cfg.Path == "" {
		return fmt.Errorf("content path is required")
	}
	if cfg.FeedLimit < 0 {
		return fmt.Errorf("feed limit must be non-negative")
	}
	for _, ft := range cfg.FeedTypes {
		switch ft {
		case "rss", "atom", "json":
		default:
			return fmt.Errorf("invalid feed type %q (expected rss, atom or json)", ft)
		}
	}
	return nil
}

// parseCount parses an option that accepts a positive integer or the
// literal "ALL".
func parseCount(name, value string) (int, bool, error) {
	if strings.EqualFold(value, "ALL") {
		return 0, true, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, false, fmt.Errorf("invalid %s %q: expected an integer >= 1 or ALL", name, value)
	}
	return n, false, nil
}

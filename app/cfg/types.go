package cfg

import "regexp"

// Cfg holds the resolved engine configuration. PostsPerPage and SidebarCount
// carry the ALL flags when the corresponding option was set to the literal
// "ALL" instead of a number.
type Cfg struct {
	// Content configuration
	Path           string
	LocalizedPath  string
	SiteDir        string
	Include        []string
	Exclude        []string
	AuthorsMapPath string

	// Routing configuration
	BaseURL         string
	SiteURL         string
	RouteBasePath   string
	TagsBasePath    string
	AuthorsBasePath string
	PageBasePath    string
	ArchiveBasePath string

	// Listing configuration
	BlogTitle       string
	BlogDescription string
	SidebarTitle    string
	PostsPerPage    int
	PostsPerPageAll bool
	SidebarCount    int
	SidebarCountAll bool
	SortPosts       string

	// Post metadata configuration
	ShowReadingTime      bool
	ShowLastUpdateTime   bool
	ShowLastUpdateAuthor bool
	TruncateMarker       *regexp.Regexp
	EditURL              string
	EditLocalizedFiles   bool
	Locale               string
	Calendar             string

	// Feed configuration
	FeedTypes []string
	FeedLimit int

	// Application configuration
	OutDir      string
	Port        string
	WorkerCount int
	Production  bool
	Debug       bool
	Version     string
}

// SortDescending reports whether posts keep the default most-recent-first
// reading order.
func (c *Cfg) SortDescending() bool {
	return c.SortPosts != "ascending"
}

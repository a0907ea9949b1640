// Package markdown parses blog source files: front matter, content title,
// excerpt, truncation and HTML rendering.
package markdown

// FrontMatter is the validated front matter of a blog source file. Raw keeps
// the full decoded mapping so downstream consumers can reach fields the
// typed struct does not model.
type FrontMatter struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Slug        string `yaml:"slug"`

	// Date accepts both ISO strings and YAML typed dates.
	Date any `yaml:"date"`

	Tags    []any `yaml:"tags"`
	Authors any   `yaml:"authors"`

	// Legacy single-author fields.
	Author         string `yaml:"author"`
	AuthorTitle    string `yaml:"author_title"`
	AuthorTitleAlt string `yaml:"authorTitle"`
	AuthorURL      string `yaml:"author_url"`
	AuthorURLAlt   string `yaml:"authorURL"`
	AuthorImageURL string `yaml:"author_image_url"`
	AuthorImageAlt string `yaml:"authorImageURL"`

	Draft    bool `yaml:"draft"`
	Unlisted bool `yaml:"unlisted"`

	EventDate    string `yaml:"event_date"`
	EventEndDate string `yaml:"event_end_date"`

	LastUpdate *LastUpdateFrontMatter `yaml:"last_update"`

	Keywords []string `yaml:"keywords"`
	Image    string   `yaml:"image"`

	Raw map[string]any `yaml:"-"`
}

// LastUpdateFrontMatter is the optional last_update front matter override.
type LastUpdateFrontMatter struct {
	Author string `yaml:"author"`
	Date   any    `yaml:"date"`
}

// Has reports whether the front matter explicitly sets the given key. An
// explicit empty description suppresses the excerpt fallback.
func (fm *FrontMatter) Has(key string) bool {
	_, ok := fm.Raw[key]
	return ok
}

// LegacyAuthorTitle resolves the snake_case/camelCase alias pair.
func (fm *FrontMatter) LegacyAuthorTitle() string {
	if fm.AuthorTitle != "" {
		return fm.AuthorTitle
	}
	return fm.AuthorTitleAlt
}

func (fm *FrontMatter) LegacyAuthorURL() string {
	if fm.AuthorURL != "" {
		return fm.AuthorURL
	}
	return fm.AuthorURLAlt
}

func (fm *FrontMatter) LegacyAuthorImageURL() string {
	if fm.AuthorImageURL != "" {
		return fm.AuthorImageURL
	}
	return fm.AuthorImageAlt
}

// HasTag reports whether the raw tags front matter contains the given label
// as a plain string entry.
func (fm *FrontMatter) HasTag(label string) bool {
	for _, t := range fm.Tags {
		if s, ok := t.(string); ok && s == label {
			return true
		}
	}
	return false
}

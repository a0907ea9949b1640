package authors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blogcomb/blogcomb/app/urls"
)

// FrontMatter carries the author-related front matter of a single post.
// Authors holds the raw value of the authors field: a key string, an inline
// author object or a list mixing both.
type FrontMatter struct {
	Author         string
	AuthorTitle    string
	AuthorURL      string
	AuthorImageURL string
	Authors        any
}

// Resolve turns the author front matter of a post into a resolved author
// list. Map entries referenced by key are copied before front matter
// overrides apply, so resolution never mutates the shared map.
func Resolve(fm FrontMatter, authorsMap Map, baseURL, authorsBasePath string) ([]Author, error) {
	legacy := resolveLegacy(fm, baseURL, authorsBasePath)

	resolved, err := resolveModern(fm.Authors, authorsMap, authorsBasePath)
	if err != nil {
		return nil, err
	}
	for i := range resolved {
		resolved[i].ImageURL = normalizeImageURL(resolved[i].ImageURL, baseURL)
	}

	if legacy != nil {
		if len(resolved) > 0 {
			return nil, fmt.Errorf("to declare blog post authors, use the 'authors' front matter in priority; " +
				"don't mix 'authors' with other existing 'author_*' front matter, choose one or the other")
		}
		return []Author{*legacy}, nil
	}

	return resolved, nil
}

func resolveLegacy(fm FrontMatter, baseURL, authorsBasePath string) *Author {
	imageURL := normalizeImageURL(fm.AuthorImageURL, baseURL)

	if fm.Author == "" && fm.AuthorTitle == "" && fm.AuthorURL == "" && imageURL == "" {
		return nil
	}

	author := Author{
		Name:     fm.Author,
		Title:    fm.AuthorTitle,
		URL:      fm.AuthorURL,
		ImageURL: imageURL,
	}
	if fm.Author != "" {
		author.Permalink = makePermalink(fm.Author, authorsBasePath)
	}
	return &author
}

func resolveModern(raw any, authorsMap Map, authorsBasePath string) ([]Author, error) {
	entries, err := normalizeAuthorEntries(raw)
	if err != nil {
		return nil, err
	}

	resolved := make([]Author, 0, len(entries))
	for _, entry := range entries {
		author, err := resolveAuthorEntry(entry, authorsMap, authorsBasePath)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, author)
	}
	return resolved, nil
}

// normalizeAuthorEntries brings the authors front matter into a uniform list
// of objects. Bare strings are treated as author keys, never names, so a
// typo in a key fails loudly instead of silently becoming a new author.
func normalizeAuthorEntries(raw any) ([]map[string]any, error) {
	if raw == nil {
		return nil, nil
	}

	values, ok := raw.([]any)
	if !ok {
		values = []any{raw}
	}

	entries := make([]map[string]any, 0, len(values))
	for _, v := range values {
		switch value := v.(type) {
		case string:
			entries = append(entries, map[string]any{"key": value})
		case map[string]any:
			entries = append(entries, value)
		default:
			return nil, fmt.Errorf("authors front matter entries must be key strings or author objects, got %T", v)
		}
	}
	return entries, nil
}

func resolveAuthorEntry(entry map[string]any, authorsMap Map, authorsBasePath string) (Author, error) {
	var author Author

	if key, _ := entry["key"].(string); key != "" {
		if len(authorsMap) == 0 {
			return Author{}, fmt.Errorf("can't reference blog post authors by a key (such as %q) because no authors map file could be loaded; "+
				"please double-check the authors map path configuration and ensure the file exists and is valid", key)
		}
		template, ok := authorsMap[key]
		if !ok {
			return Author{}, fmt.Errorf("blog author with key %q not found in the authors map file; valid author keys are:\n%s",
				key, formatValidKeys(authorsMap))
		}
		author = template.Clone()
		if author.Name != "" {
			author.Permalink = makePermalink(author.Name, authorsBasePath)
		} else {
			author.Permalink = makePermalink(key, authorsBasePath)
		}
	}

	// Front matter fields shallow-override the map entry.
	overrides, err := authorFromFields(entry)
	if err != nil {
		return Author{}, err
	}
	applyOverrides(&author, entry, overrides)

	return author, nil
}

func applyOverrides(author *Author, fields map[string]any, overrides Author) {
	if _, ok := fields["key"]; ok {
		author.Key = overrides.Key
	}
	if _, ok := fields["permalink"]; ok {
		author.Permalink = overrides.Permalink
	}
	if _, ok := fields["name"]; ok {
		author.Name = overrides.Name
	}
	if _, ok := fields["title"]; ok {
		author.Title = overrides.Title
	}
	if _, ok := fields["url"]; ok {
		author.URL = overrides.URL
	}
	if _, ok := fields["image_url"]; ok {
		author.ImageURL = overrides.ImageURL
	}
	if _, ok := fields["imageURL"]; ok {
		author.ImageURL = overrides.ImageURL
	}
	if _, ok := fields["email"]; ok {
		author.Email = overrides.Email
	}
	if _, ok := fields["description"]; ok {
		author.Description = overrides.Description
	}
	if _, ok := fields["page"]; ok {
		author.Page = overrides.Page
	}
	if _, ok := fields["socials"]; ok {
		author.Socials = overrides.Socials
	}
	if overrides.Extra != nil {
		if author.Extra == nil {
			author.Extra = map[string]any{}
		}
		for k, v := range overrides.Extra {
			author.Extra[k] = v
		}
	}
}

func makePermalink(name, authorsBasePath string) string {
	return authorsBasePath + "/" + MakeURLFromName(name)
}

func normalizeImageURL(imageURL, baseURL string) string {
	if strings.HasPrefix(imageURL, "/") {
		return urls.Normalize(baseURL, imageURL)
	}
	return imageURL
}

func formatValidKeys(authorsMap Map) string {
	keys := make([]string, 0, len(authorsMap))
	for key := range authorsMap {
		keys = append(keys, "- "+key)
	}
	sort.Strings(keys)
	return strings.Join(keys, "\n")
}

package authors

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMap reads the authors map file, trying contentDirs in order and
// returning the first file found. A missing file is not an error: posts
// using inline authors need no map at all.
func LoadMap(contentDirs []string, mapPath string) (Map, error) {
	for _, dir := range contentDirs {
		path := filepath.Join(dir, mapPath)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read authors map file %s: %w", path, err)
		}

		m, err := ParseMap(data)
		if err != nil {
			return nil, fmt.Errorf("invalid authors map file %s: %w", path, err)
		}
		return m, nil
	}
	return nil, nil
}

// ParseMap decodes and validates authors map YAML content.
func ParseMap(data []byte) (Map, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("authors map must be an object keyed by author key: %w", err)
	}

	m := make(Map, len(raw))
	for key, entry := range raw {
		if entry == nil {
			return nil, fmt.Errorf("author %q must be an object", key)
		}
		author, err := authorFromFields(entry)
		if err != nil {
			return nil, fmt.Errorf("author %q: %w", key, err)
		}
		if author.Name == "" && author.ImageURL == "" {
			return nil, fmt.Errorf("author %q must declare a name or an image", key)
		}
		author.Key = key
		m[key] = author
	}
	return m, nil
}

// authorFromFields builds an Author from a decoded front matter or authors
// map object. The snake_case image_url alias is folded into imageURL and
// unknown keys are kept in Extra.
func authorFromFields(fields map[string]any) (Author, error) {
	var author Author
	for key, value := range fields {
		switch key {
		case "key":
			author.Key = stringField(value)
		case "permalink":
			author.Permalink = stringField(value)
		case "name":
			author.Name = stringField(value)
		case "title":
			author.Title = stringField(value)
		case "url":
			author.URL = stringField(value)
		case "image_url", "imageURL":
			author.ImageURL = stringField(value)
		case "email":
			author.Email = stringField(value)
		case "description":
			author.Description = stringField(value)
		case "page":
			b, ok := value.(bool)
			if !ok && value != nil {
				return Author{}, fmt.Errorf("page must be a boolean, got %T", value)
			}
			author.Page = b
		case "socials":
			socials, ok := value.(map[string]any)
			if !ok && value != nil {
				return Author{}, fmt.Errorf("socials must be an object, got %T", value)
			}
			author.Socials = socials
		default:
			if author.Extra == nil {
				author.Extra = map[string]any{}
			}
			author.Extra[key] = value
		}
	}
	return author, nil
}

func stringField(value any) string {
	s, _ := value.(string)
	return s
}

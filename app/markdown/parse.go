package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// ParseResult is a fully parsed blog source file.
type ParseResult struct {
	FrontMatter  FrontMatter
	Content      string
	ContentTitle string
	Excerpt      string
}

// Parse splits front matter from the markdown body, extracts the content
// title (removing it from the body) and computes the excerpt.
func Parse(source []byte) (*ParseResult, error) {
	fm, content, err := parseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	content, contentTitle := ParseContentTitle(content, true)
	excerpt := CreateExcerpt(content)

	return &ParseResult{
		FrontMatter:  fm,
		Content:      content,
		ContentTitle: contentTitle,
		Excerpt:      excerpt,
	}, nil
}

func parseFrontMatter(source []byte) (FrontMatter, string, error) {
	var fm FrontMatter
	rest, err := frontmatter.Parse(bytes.NewReader(source), &fm, yamlFormat)
	if err != nil {
		return FrontMatter{}, "", fmt.Errorf("failed to parse front matter: %w", err)
	}

	var raw map[string]any
	if _, err := frontmatter.Parse(bytes.NewReader(source), &raw, yamlFormat); err != nil {
		return FrontMatter{}, "", fmt.Errorf("failed to parse front matter: %w", err)
	}
	fm.Raw = raw

	if err := validateFrontMatter(&fm); err != nil {
		return FrontMatter{}, "", err
	}

	return fm, strings.TrimSpace(string(rest)), nil
}

func validateFrontMatter(fm *FrontMatter) error {
	switch fm.Date.(type) {
	case nil, string:
	default:
		if _, ok := DateValue(fm.Date); !ok {
			return fmt.Errorf("front matter date must be a string or a date, got %T", fm.Date)
		}
	}

	switch fm.Authors.(type) {
	case nil, string, []any, map[string]any:
	default:
		return fmt.Errorf("front matter authors must be a key, an author object or a list, got %T", fm.Authors)
	}

	if fm.EventEndDate != "" && fm.EventDate == "" {
		return fmt.Errorf("front matter event_end_date requires event_date")
	}

	return nil
}

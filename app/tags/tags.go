// Package tags normalizes post tag front matter and groups posts by tag.
package tags

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/blogcomb/blogcomb/app/urls"
)

// Tag is a normalized post tag with its page permalink.
type Tag struct {
	Label     string `json:"label"`
	Permalink string `json:"permalink"`
}

// Normalize turns the raw tags front matter into unique Tag values. Entries
// are either label strings or {label, permalink} objects; missing permalinks
// are derived by kebab-casing the label, then joined onto tagsPath.
// Duplicate permalinks keep the first entry.
func Normalize(tagsPath string, raw any) ([]Tag, error) {
	if raw == nil {
		return nil, nil
	}

	values, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("tags front matter must be a list, got %T", raw)
	}

	seen := make(map[string]struct{}, len(values))
	tags := make([]Tag, 0, len(values))
	for _, v := range values {
		tag, err := normalizeTag(tagsPath, v)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[tag.Permalink]; ok {
			continue
		}
		seen[tag.Permalink] = struct{}{}
		tags = append(tags, tag)
	}
	return tags, nil
}

func normalizeTag(tagsPath string, v any) (Tag, error) {
	switch value := v.(type) {
	case string:
		return Tag{
			Label:     value,
			Permalink: urls.Normalize(tagsPath, KebabCase(value)),
		}, nil
	case map[string]any:
		label, _ := value["label"].(string)
		permalink, _ := value["permalink"].(string)
		if label == "" {
			return Tag{}, fmt.Errorf("tag object must have a label, got %v", value)
		}
		if permalink == "" {
			permalink = KebabCase(label)
		}
		return Tag{Label: label, Permalink: urls.Normalize(tagsPath, permalink)}, nil
	default:
		return Tag{}, fmt.Errorf("tags front matter entries must be strings or {label, permalink} objects, got %T", v)
	}
}

// KebabCase lowercases a label and joins its words with dashes, splitting on
// separators, case transitions and letter-digit boundaries. "Hello World"
// becomes "hello-world" and "camelCase" becomes "camel-case".
func KebabCase(s string) string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = nil
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(current) > 0 {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsDigit(prev) != unicode.IsDigit(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			}
		}
		current = append(current, r)
	}
	flush()

	return strings.Join(words, "-")
}

// ItemGroup collects the items carrying a single tag.
type ItemGroup[Item any] struct {
	Tag   Tag
	Items []Item
}

// GroupTaggedItems groups items by tag permalink. The first label seen for a
// permalink wins.
func GroupTaggedItems[Item any](
	items []Item,
	getTags func(Item) []Tag,
) map[string]*ItemGroup[Item] {
	groups := make(map[string]*ItemGroup[Item])

	for _, item := range items {
		for _, tag := range getTags(item) {
			group, ok := groups[tag.Permalink]
			if !ok {
				group = &ItemGroup[Item]{Tag: tag}
				groups[tag.Permalink] = group
			}
			group.Items = append(group.Items, item)
		}
	}

	return groups
}

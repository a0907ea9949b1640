package tags

import "testing"

func TestKebabCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"camelCase", "camel-case"},
		{"XMLParser", "xml-parser"},
		{"release 2024", "release-2024"},
		{"already-kebab", "already-kebab"},
	}

	for _, c := range cases {
		if got := KebabCase(c.in); got != c.want {
			t.Errorf("KebabCase(%q) = %q, expected %q", c.in, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	raw := []any{
		"Hello World",
		map[string]any{"label": "Go", "permalink": "golang"},
		map[string]any{"label": "Releases"},
		"hello world",
	}

	tags, err := Normalize("/blog/tags", raw)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	want := []Tag{
		{Label: "Hello World", Permalink: "/blog/tags/hello-world"},
		{Label: "Go", Permalink: "/blog/tags/golang"},
		{Label: "Releases", Permalink: "/blog/tags/releases"},
	}

	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %d: %v", len(want), len(tags), tags)
	}
	for i, w := range want {
		if tags[i] != w {
			t.Errorf("tag %d = %+v, expected %+v", i, tags[i], w)
		}
	}
}

func TestNormalizeRejectsBadShapes(t *testing.T) {
	if _, err := Normalize("/blog/tags", "not-a-list"); err == nil {
		t.Errorf("expected error for non-list tags")
	}
	if _, err := Normalize("/blog/tags", []any{42}); err == nil {
		t.Errorf("expected error for numeric tag entry")
	}
	if _, err := Normalize("/blog/tags", []any{map[string]any{"permalink": "x"}}); err == nil {
		t.Errorf("expected error for tag object without label")
	}
}

func TestGroupTaggedItems(t *testing.T) {
	goTag := Tag{Label: "Go", Permalink: "/blog/tags/go"}
	relTag := Tag{Label: "Releases", Permalink: "/blog/tags/releases"}

	type item struct {
		id   string
		tags []Tag
	}
	items := []*item{
		{id: "a", tags: []Tag{goTag, relTag}},
		{id: "b", tags: []Tag{goTag}},
		{id: "c"},
	}

	groups := GroupTaggedItems(items, func(i *item) []Tag { return i.tags })

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if got := len(groups["/blog/tags/go"].Items); got != 2 {
		t.Errorf("expected 2 items tagged go, got %d", got)
	}
	if groups["/blog/tags/releases"].Tag.Label != "Releases" {
		t.Errorf("unexpected tag in group: %+v", groups["/blog/tags/releases"].Tag)
	}
}

package authors

import (
	"strings"
	"testing"
)

func TestMakeURLFromName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"José Ñandú", "jose-nandu"},
		{"Sébastien Lorber", "sebastien-lorber"},
		{"John   Doe", "john-doe"},
		{"O'Brien Esq.", "obrien-esq"},
		{"already-slugged", "already-slugged"},
	}

	for _, c := range cases {
		if got := MakeURLFromName(c.name); got != c.want {
			t.Errorf("MakeURLFromName(%q) = %q, expected %q", c.name, got, c.want)
		}
	}
}

func TestParseMap(t *testing.T) {
	data := []byte(`
jdoe:
  name: John Doe
  title: Maintainer
  image_url: /img/jdoe.png
  twitter: jdoe
logo:
  imageURL: https://example.com/logo.png
`)

	m, err := ParseMap(data)
	if err != nil {
		t.Fatalf("ParseMap() error: %v", err)
	}

	jdoe := m["jdoe"]
	if jdoe.Name != "John Doe" || jdoe.Title != "Maintainer" {
		t.Errorf("unexpected jdoe entry: %+v", jdoe)
	}
	if jdoe.ImageURL != "/img/jdoe.png" {
		t.Errorf("expected image_url alias to fold into ImageURL, got %q", jdoe.ImageURL)
	}
	if jdoe.Extra["twitter"] != "jdoe" {
		t.Errorf("expected unknown key in Extra, got %v", jdoe.Extra)
	}
	if m["logo"].ImageURL != "https://example.com/logo.png" {
		t.Errorf("unexpected logo entry: %+v", m["logo"])
	}
}

func TestParseMapRejectsEmptyAuthor(t *testing.T) {
	if _, err := ParseMap([]byte("ghost:\n  title: Spooky\n")); err == nil {
		t.Errorf("expected error for author without name or image")
	}
	if _, err := ParseMap([]byte("- a\n- b\n")); err == nil {
		t.Errorf("expected error for non-object authors map")
	}
}

func testMap() Map {
	return Map{
		"jdoe": {Key: "jdoe", Name: "John Doe", Title: "Maintainer", Page: true},
		"anon": {Key: "anon", ImageURL: "/img/anon.png"},
	}
}

func TestResolveByKey(t *testing.T) {
	fm := FrontMatter{Authors: "jdoe"}

	resolved, err := Resolve(fm, testMap(), "/", "/blog/authors")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if len(resolved) != 1 {
		t.Fatalf("expected 1 author, got %d", len(resolved))
	}
	a := resolved[0]
	if a.Name != "John Doe" || a.Key != "jdoe" {
		t.Errorf("unexpected author: %+v", a)
	}
	if a.Permalink != "/blog/authors/john-doe" {
		t.Errorf("expected permalink from name, got %q", a.Permalink)
	}
}

func TestResolveKeyWithoutName(t *testing.T) {
	fm := FrontMatter{Authors: "anon"}

	resolved, err := Resolve(fm, testMap(), "/site/", "/blog/authors")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	a := resolved[0]
	if a.Permalink != "/blog/authors/anon" {
		t.Errorf("expected permalink from key, got %q", a.Permalink)
	}
	if a.ImageURL != "/site/img/anon.png" {
		t.Errorf("expected image URL prefixed with base URL, got %q", a.ImageURL)
	}
}

func TestResolveOverridesDoNotMutateMap(t *testing.T) {
	m := testMap()
	fm := FrontMatter{Authors: []any{
		map[string]any{"key": "jdoe", "title": "Guest writer"},
	}}

	resolved, err := Resolve(fm, m, "/", "/blog/authors")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if resolved[0].Title != "Guest writer" {
		t.Errorf("expected front matter override, got %q", resolved[0].Title)
	}
	if m["jdoe"].Title != "Maintainer" {
		t.Errorf("authors map entry was mutated: %+v", m["jdoe"])
	}
}

func TestResolveInlineAuthor(t *testing.T) {
	fm := FrontMatter{Authors: []any{
		map[string]any{"name": "Drive-by Contributor", "url": "https://example.com"},
	}}

	resolved, err := Resolve(fm, nil, "/", "/blog/authors")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	a := resolved[0]
	if a.Name != "Drive-by Contributor" {
		t.Errorf("unexpected author: %+v", a)
	}
	if a.Permalink != "" {
		t.Errorf("inline author without key should have no permalink, got %q", a.Permalink)
	}
}

func TestResolveUnknownKey(t *testing.T) {
	fm := FrontMatter{Authors: "nobody"}

	_, err := Resolve(fm, testMap(), "/", "/blog/authors")
	if err == nil {
		t.Fatalf("expected error for unknown author key")
	}
	if !strings.Contains(err.Error(), "- anon") || !strings.Contains(err.Error(), "- jdoe") {
		t.Errorf("expected valid keys in error, got %v", err)
	}
}

func TestResolveKeyWithoutMap(t *testing.T) {
	if _, err := Resolve(FrontMatter{Authors: "jdoe"}, nil, "/", "/blog/authors"); err == nil {
		t.Errorf("expected error when no authors map is loaded")
	}
}

func TestResolveLegacyFields(t *testing.T) {
	fm := FrontMatter{
		Author:         "Jane Smith",
		AuthorTitle:    "Founder",
		AuthorImageURL: "/img/jane.png",
	}

	resolved, err := Resolve(fm, nil, "/base/", "/blog/authors")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	a := resolved[0]
	if a.Name != "Jane Smith" || a.Title != "Founder" {
		t.Errorf("unexpected legacy author: %+v", a)
	}
	if a.Permalink != "/blog/authors/jane-smith" {
		t.Errorf("unexpected permalink %q", a.Permalink)
	}
	if a.ImageURL != "/base/img/jane.png" {
		t.Errorf("unexpected image URL %q", a.ImageURL)
	}
}

func TestResolveMixedLegacyAndModern(t *testing.T) {
	fm := FrontMatter{Author: "Jane Smith", Authors: "jdoe"}

	if _, err := Resolve(fm, testMap(), "/", "/blog/authors"); err == nil {
		t.Errorf("expected error when mixing legacy and modern author front matter")
	}
}

type testItem struct {
	id       string
	authors  []Author
	unlisted bool
}

func TestGroupAuthoredItems(t *testing.T) {
	jdoe := Author{Name: "John Doe", Permalink: "/blog/authors/john-doe"}
	jane := Author{Name: "Jane Smith", Permalink: "/blog/authors/jane-smith"}
	ghost := Author{Name: "Ghost"}

	items := []*testItem{
		{id: "a", authors: []Author{jdoe, jane}},
		{id: "b", authors: []Author{jdoe, jdoe}},
		{id: "c", authors: []Author{ghost}},
	}

	groups := GroupAuthoredItems(items, func(i *testItem) []Author { return i.authors })

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if got := len(groups["/blog/authors/john-doe"].Items); got != 2 {
		t.Errorf("expected 2 items for john-doe, got %d", got)
	}
	if got := len(groups["/blog/authors/jane-smith"].Items); got != 1 {
		t.Errorf("expected 1 item for jane-smith, got %d", got)
	}
}

func TestGetVisibility(t *testing.T) {
	listedItem := &testItem{id: "a"}
	unlistedItem := &testItem{id: "b", unlisted: true}
	isUnlisted := func(i *testItem) bool { return i.unlisted }

	v := GetVisibility([]*testItem{listedItem, unlistedItem}, isUnlisted)
	if v.Unlisted || len(v.ListedItems) != 1 || v.ListedItems[0] != listedItem {
		t.Errorf("unexpected visibility for mixed group: %+v", v)
	}

	v = GetVisibility([]*testItem{unlistedItem}, isUnlisted)
	if !v.Unlisted || len(v.ListedItems) != 1 {
		t.Errorf("unexpected visibility for fully unlisted group: %+v", v)
	}
}

package dates

import (
	"testing"
	"time"
)

func TestParseFileNameWithDate(t *testing.T) {
	info := ParseFileName("2024-03-15-my-post.md")

	if info.Date == nil {
		t.Fatalf("expected a date")
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !info.Date.Equal(want) {
		t.Errorf("expected date %v, got %v", want, *info.Date)
	}
	if info.Text != "my-post" {
		t.Errorf("expected text \"my-post\", got %q", info.Text)
	}
	if info.Slug != "/2024/03/15/my-post" {
		t.Errorf("expected slug \"/2024/03/15/my-post\", got %q", info.Slug)
	}
}

func TestParseFileNameWithoutDate(t *testing.T) {
	info := ParseFileName("no-date-here.md")

	if info.Date != nil {
		t.Errorf("expected no date, got %v", *info.Date)
	}
	if info.Slug != "/no-date-here" {
		t.Errorf("expected slug \"/no-date-here\", got %q", info.Slug)
	}
}

func TestParseFileNameVariants(t *testing.T) {
	cases := []struct {
		path string
		slug string
		date string
	}{
		{"2024-3-5-short.md", "/2024/3/5/short", "2024-03-05"},
		{"2024/03/15/nested.mdx", "/2024/03/15/nested", "2024-03-15"},
		{"folder/2024-03-15-post/index.md", "/2024/03/15/folder/post", "2024-03-15"},
		{"2024-03-15.md", "/2024/03/15/", "2024-03-15"},
	}

	for _, c := range cases {
		info := ParseFileName(c.path)
		if info.Slug != c.slug {
			t.Errorf("ParseFileName(%q) slug = %q, expected %q", c.path, info.Slug, c.slug)
		}
		if info.Date == nil {
			t.Errorf("ParseFileName(%q) expected a date", c.path)
			continue
		}
		if got := info.Date.Format("2006-01-02"); got != c.date {
			t.Errorf("ParseFileName(%q) date = %s, expected %s", c.path, got, c.date)
		}
	}
}

func TestMakeDateISO(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1993-11-01", "1993-11-01T00:00:00.000Z"},
		{"1993-11", "1993-11-15T00:00:00.000Z"},
		{"1993", "1993-07-01T00:00:00.000Z"},
		{"525", "0525-07-01T00:00:00.000Z"},
	}

	for _, c := range cases {
		got, err := MakeDateISO(c.in)
		if err != nil {
			t.Errorf("MakeDateISO(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("MakeDateISO(%q) = %q, expected %q", c.in, got, c.want)
		}
	}

	if _, err := MakeDateISO("1993-13-01"); err == nil {
		t.Errorf("expected error for month 13")
	}
	if _, err := MakeDateISO("not-a-date"); err == nil {
		t.Errorf("expected error for garbage input")
	}
}

func TestFormatEventDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1993-11-01", "1 November 1993"},
		{"1993-11", "November 1993"},
		{"1993", "1993"},
	}

	for _, c := range cases {
		if got := FormatEventDate(c.in); got != c.want {
			t.Errorf("FormatEventDate(%q) = %q, expected %q", c.in, got, c.want)
		}
	}
}

func TestFormatEventInterval(t *testing.T) {
	cases := []struct {
		start, end string
		want       string
	}{
		{"1993-11-01", "1993-11-04", "1 - 4 November 1993"},
		{"1993-11-28", "1993-12-02", "28 November - 2 December 1993"},
		{"1993-11", "1993-12", "November - December 1993"},
		{"1993-12-28", "1994-01-02", "28 December 1993 - 2 January 1994"},
		{"1993", "1994", "1993 - 1994"},
	}

	for _, c := range cases {
		if got := FormatEventInterval(c.start, c.end); got != c.want {
			t.Errorf("FormatEventInterval(%q, %q) = %q, expected %q", c.start, c.end, got, c.want)
		}
	}
}

func TestFormatBlogPostDate(t *testing.T) {
	d := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)

	got, err := FormatBlogPostDate(d, "en", "gregory")
	if err != nil {
		t.Fatalf("FormatBlogPostDate() error: %v", err)
	}
	if got != "March 15, 2024" {
		t.Errorf("expected \"March 15, 2024\", got %q", got)
	}

	if _, err := FormatBlogPostDate(d, "en", "islamic"); err == nil {
		t.Errorf("expected error for unsupported calendar")
	}
}

package post

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/blogcomb/blogcomb/app/authors"
	"github.com/blogcomb/blogcomb/app/cfg"
	"github.com/blogcomb/blogcomb/app/dates"
	"github.com/blogcomb/blogcomb/app/markdown"
	"github.com/blogcomb/blogcomb/app/tags"
	"github.com/blogcomb/blogcomb/app/urls"
	"github.com/blogcomb/blogcomb/app/vcs"
)

// EditURLParams is passed to a custom edit URL function.
type EditURLParams struct {
	BlogDirPath string
	BlogPath    string
	Permalink   string
	Locale      string
}

// Ingester derives a Post from each blog source file.
type Ingester struct {
	cfg        *cfg.Cfg
	authorsMap authors.Map

	// EditURLFn overrides the configured edit URL base when set.
	EditURLFn func(EditURLParams) string
}

func NewIngester(c *cfg.Cfg, authorsMap authors.Map) *Ingester {
	return &Ingester{cfg: c, authorsMap: authorsMap}
}

// ContentDirs lists the content roots in lookup priority order, localized
// first.
func (ing *Ingester) ContentDirs() []string {
	dirs := make([]string, 0, 2)
	if ing.cfg.LocalizedPath != "" {
		dirs = append(dirs, ing.cfg.LocalizedPath)
	}
	return append(dirs, ing.cfg.Path)
}

// Ingest processes a single source file given by its content-relative path.
// Drafts return a nil post.
func (ing *Ingester) Ingest(ctx context.Context, sourceRelative string) (*Post, error) {
	blogDir, err := ing.folderContainingFile(sourceRelative)
	if err != nil {
		return nil, err
	}
	sourceAbsolute := filepath.Join(blogDir, sourceRelative)

	raw, err := os.ReadFile(sourceAbsolute)
	if err != nil {
		return nil, fmt.Errorf("failed to read blog source %s: %w", sourceAbsolute, err)
	}

	parsed, err := markdown.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse blog source %s: %w", sourceAbsolute, err)
	}
	fm := parsed.FrontMatter

	if fm.Draft {
		return nil, nil
	}
	if fm.ID != "" {
		slog.Warn("The id header option is deprecated, use slug instead", "file", sourceRelative)
	}

	lastUpdate := vcs.ReadLastUpdateData(ctx, sourceAbsolute,
		ing.cfg.ShowLastUpdateTime, ing.cfg.ShowLastUpdateAuthor, ing.cfg.Production, fm.LastUpdate)

	fileName := dates.ParseFileName(filepath.ToSlash(sourceRelative))

	date, err := ing.resolveDate(ctx, sourceAbsolute, &fm, fileName)
	if err != nil {
		return nil, err
	}

	formattedDate, err := dates.FormatBlogPostDate(date, ing.cfg.Locale, ing.cfg.Calendar)
	if err != nil {
		return nil, fmt.Errorf("failed to format date of %s: %w", sourceRelative, err)
	}

	title := fm.Title
	if !fm.Has("title") {
		title = parsed.ContentTitle
		if title == "" {
			title = fileName.Text
		}
	}
	description := fm.Description
	if !fm.Has("description") {
		description = parsed.Excerpt
	}

	slug := fm.Slug
	if !fm.Has("slug") {
		slug = fileName.Slug
	}
	permalink := urls.Normalize(ing.cfg.BaseURL, ing.cfg.RouteBasePath, slug)

	tagsBasePath := urls.Normalize(ing.cfg.BaseURL, ing.cfg.RouteBasePath, ing.cfg.TagsBasePath)
	postTags, err := tags.Normalize(tagsBasePath, anySlice(fm.Tags))
	if err != nil {
		return nil, fmt.Errorf("invalid tags in %s: %w", sourceRelative, err)
	}

	authorsBasePath := urls.Normalize(ing.cfg.BaseURL, ing.cfg.RouteBasePath, ing.cfg.AuthorsBasePath)
	postAuthors, err := authors.Resolve(authors.FrontMatter{
		Author:         fm.Author,
		AuthorTitle:    fm.LegacyAuthorTitle(),
		AuthorURL:      fm.LegacyAuthorURL(),
		AuthorImageURL: fm.LegacyAuthorImageURL(),
		Authors:        fm.Authors,
	}, ing.authorsMap, ing.cfg.BaseURL, authorsBasePath)
	if err != nil {
		return nil, fmt.Errorf("invalid authors in %s: %w", sourceRelative, err)
	}

	metadata := Metadata{
		Permalink:         permalink,
		Source:            aliasedSource(ing.cfg.SiteDir, sourceAbsolute),
		Title:             title,
		Description:       description,
		Date:              date,
		FormattedDate:     formattedDate,
		Tags:              postTags,
		Authors:           postAuthors,
		HasTruncateMarker: markdown.HasTruncateMarker(ing.cfg.TruncateMarker, parsed.Content),
		FrontMatter:       fm.Raw,
		Unlisted:          fm.Unlisted,
		LastUpdatedBy:     lastUpdate.LastUpdatedBy,
		LastUpdatedAt:     lastUpdate.LastUpdatedAt,
	}

	metadata.EditURL = ing.editURL(blogDir, sourceAbsolute, permalink)

	if ing.cfg.ShowReadingTime {
		rt := markdown.ReadingTime(parsed.Content)
		metadata.ReadingTime = &rt
	}

	if err := applyEventDates(&metadata, &fm); err != nil {
		return nil, fmt.Errorf("invalid event dates in %s: %w", sourceRelative, err)
	}

	if lastUpdate.LastUpdatedAt != nil {
		metadata.FormattedLastUpdatedAt = dates.FormatLastUpdated(
			time.Unix(int64(*lastUpdate.LastUpdatedAt), 0))
	}

	return &Post{
		ID:       slug,
		Metadata: metadata,
		Content:  parsed.Content,
	}, nil
}

func (ing *Ingester) folderContainingFile(sourceRelative string) (string, error) {
	for _, dir := range ing.ContentDirs() {
		if _, err := os.Stat(filepath.Join(dir, sourceRelative)); err == nil {
			return dir, nil
		}
	}
	return "", fmt.Errorf("blog source %s not found in any content directory", sourceRelative)
}

// resolveDate prefers the front matter date, then the filename date, then
// the oldest git commit, and finally the filesystem birth time.
func (ing *Ingester) resolveDate(ctx context.Context, sourceAbsolute string, fm *markdown.FrontMatter, fileName dates.FileNameInfo) (time.Time, error) {
	if fm.Date != nil {
		date, ok := markdown.DateValue(fm.Date)
		if !ok {
			return time.Time{}, fmt.Errorf("invalid front matter date %v in %s", fm.Date, sourceAbsolute)
		}
		return date, nil
	}
	if fileName.Date != nil {
		return *fileName.Date, nil
	}

	date, err := vcs.FileCreationDate(ctx, sourceAbsolute)
	if err == nil {
		return date, nil
	}
	if errors.Is(err, vcs.ErrGitNotFound) || errors.Is(err, vcs.ErrFileNotTracked) {
		slog.Warn("Failed to read git creation date, falling back to file birth time", "file", sourceAbsolute, "error", err)
	} else {
		slog.Warn("Failed to read git history, falling back to file birth time", "file", sourceAbsolute, "error", err)
	}

	info, statErr := os.Stat(sourceAbsolute)
	if statErr != nil {
		return time.Time{}, fmt.Errorf("failed to stat blog source %s: %w", sourceAbsolute, statErr)
	}
	return vcs.BirthTime(sourceAbsolute, info), nil
}

func (ing *Ingester) editURL(blogDir, sourceAbsolute, permalink string) string {
	blogPathRelative, err := filepath.Rel(blogDir, sourceAbsolute)
	if err != nil {
		return ""
	}
	blogPathRelative = filepath.ToSlash(blogPathRelative)

	if ing.EditURLFn != nil {
		blogDirRelative, err := filepath.Rel(ing.cfg.SiteDir, blogDir)
		if err != nil {
			blogDirRelative = blogDir
		}
		return ing.EditURLFn(EditURLParams{
			BlogDirPath: filepath.ToSlash(blogDirRelative),
			BlogPath:    blogPathRelative,
			Permalink:   permalink,
			Locale:      ing.cfg.Locale,
		})
	}

	if ing.cfg.EditURL == "" {
		return ""
	}

	isLocalized := ing.cfg.LocalizedPath != "" && blogDir == ing.cfg.LocalizedPath
	contentPath := ing.cfg.Path
	if isLocalized && ing.cfg.EditLocalizedFiles {
		contentPath = ing.cfg.LocalizedPath
	}

	contentPathRelative, err := filepath.Rel(ing.cfg.SiteDir, contentPath)
	if err != nil {
		contentPathRelative = contentPath
	}

	return urls.Normalize(ing.cfg.EditURL, filepath.ToSlash(contentPathRelative), blogPathRelative)
}

func applyEventDates(metadata *Metadata, fm *markdown.FrontMatter) error {
	if fm.EventDate == "" {
		return nil
	}

	iso, err := dates.MakeDateISO(fm.EventDate)
	if err != nil {
		return err
	}
	metadata.EventDateISO = iso
	metadata.EventDateFormatted = dates.FormatEventDate(fm.EventDate)

	if fm.EventEndDate != "" {
		endISO, err := dates.MakeDateISO(fm.EventEndDate)
		if err != nil {
			return err
		}
		metadata.EventEndDateISO = endISO
		metadata.EventIntervalFormatted = dates.FormatEventInterval(fm.EventDate, fm.EventEndDate)
	} else {
		metadata.EventEndDateISO = metadata.EventDateISO
		metadata.EventIntervalFormatted = metadata.EventDateFormatted
	}

	return nil
}

// aliasedSource rewrites an absolute source path as a site-rooted alias, the
// stable key used for generated metadata files.
func aliasedSource(siteDir, sourceAbsolute string) string {
	rel, err := filepath.Rel(siteDir, sourceAbsolute)
	if err != nil {
		return "@site/" + path.Clean(filepath.ToSlash(sourceAbsolute))
	}
	return "@site/" + filepath.ToSlash(rel)
}

func anySlice(values []any) any {
	if values == nil {
		return nil
	}
	return values
}

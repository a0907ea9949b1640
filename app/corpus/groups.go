package corpus

import (
	"github.com/blogcomb/blogcomb/app/authors"
	"github.com/blogcomb/blogcomb/app/post"
	"github.com/blogcomb/blogcomb/app/tags"
)

// BlogTag is a tag page: the tag itself, its listed post ids and pages.
type BlogTag struct {
	Label     string   `json:"label"`
	Items     []string `json:"items"`
	Permalink string   `json:"permalink"`
	Pages     []Page   `json:"pages"`
	Unlisted  bool     `json:"unlisted"`
}

// BlogAuthor is an author page. Authors without a permalink get no pages.
type BlogAuthor struct {
	Name      string         `json:"name,omitempty"`
	Author    authors.Author `json:"author"`
	Items     []string       `json:"items"`
	Permalink string         `json:"permalink,omitempty"`
	Pages     []Page         `json:"pages"`
	Unlisted  bool           `json:"unlisted"`
}

func isUnlisted(p *post.Post) bool {
	return p.Metadata.Unlisted
}

// BlogTags groups the full corpus by tag and paginates each group's listed
// posts under the tag permalink.
func BlogTags(posts []*post.Post, params PaginateParams) map[string]*BlogTag {
	groups := tags.GroupTaggedItems(posts, func(p *post.Post) []tags.Tag {
		return p.Metadata.Tags
	})

	out := make(map[string]*BlogTag, len(groups))
	for permalink, group := range groups {
		visibility := authors.GetVisibility(group.Items, isUnlisted)

		pageParams := params
		pageParams.BasePageURL = group.Tag.Permalink

		out[permalink] = &BlogTag{
			Label:     group.Tag.Label,
			Items:     postIDs(visibility.ListedItems),
			Permalink: group.Tag.Permalink,
			Pages:     Paginate(visibility.ListedItems, pageParams),
			Unlisted:  visibility.Unlisted,
		}
	}
	return out
}

// BlogAuthors groups the full corpus by author permalink and paginates each
// group's listed posts under the author permalink.
func BlogAuthors(posts []*post.Post, params PaginateParams) map[string]*BlogAuthor {
	groups := authors.GroupAuthoredItems(posts, func(p *post.Post) []authors.Author {
		return p.Metadata.Authors
	})

	out := make(map[string]*BlogAuthor, len(groups))
	for permalink, group := range groups {
		visibility := authors.GetVisibility(group.Items, isUnlisted)

		var pages []Page
		if group.Author.Permalink != "" {
			pageParams := params
			pageParams.BasePageURL = group.Author.Permalink
			pages = Paginate(visibility.ListedItems, pageParams)
		}

		out[permalink] = &BlogAuthor{
			Name:      group.Author.Name,
			Author:    group.Author,
			Items:     postIDs(visibility.ListedItems),
			Permalink: group.Author.Permalink,
			Pages:     pages,
			Unlisted:  visibility.Unlisted,
		}
	}
	return out
}

func postIDs(posts []*post.Post) []string {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

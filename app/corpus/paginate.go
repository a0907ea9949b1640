package corpus

import (
	"fmt"

	"github.com/blogcomb/blogcomb/app/post"
	"github.com/blogcomb/blogcomb/app/urls"
)

// PageMetadata describes one page of a paginated post listing.
type PageMetadata struct {
	Permalink       string `json:"permalink"`
	Page            int    `json:"page"`
	PostsPerPage    int    `json:"postsPerPage"`
	TotalPages      int    `json:"totalPages"`
	TotalCount      int    `json:"totalCount"`
	PreviousPage    string `json:"previousPage,omitempty"`
	NextPage        string `json:"nextPage,omitempty"`
	BlogDescription string `json:"blogDescription"`
	BlogTitle       string `json:"blogTitle"`
}

// Page holds the post ids of one listing page plus its metadata.
type Page struct {
	Items    []string     `json:"items"`
	Metadata PageMetadata `json:"metadata"`
}

// PaginateParams configures Paginate.
type PaginateParams struct {
	BasePageURL     string
	BlogTitle       string
	BlogDescription string
	PostsPerPage    int
	AllPosts        bool
	PageBasePath    string
}

// Paginate splits posts into listing pages. The first page lives at the base
// URL itself, later pages under "<base>/<pageBasePath>/<n>". An empty post
// list yields no pages.
func Paginate(posts []*post.Post, params PaginateParams) []Page {
	totalCount := len(posts)
	postsPerPage := params.PostsPerPage
	if params.AllPosts {
		postsPerPage = totalCount
	}
	if postsPerPage <= 0 {
		return nil
	}

	numberOfPages := (totalCount + postsPerPage - 1) / postsPerPage

	permalink := func(page int) string {
		if page > 0 {
			return urls.Normalize(params.BasePageURL,
				fmt.Sprintf("%s/%d", params.PageBasePath, page+1))
		}
		return params.BasePageURL
	}

	pages := make([]Page, 0, numberOfPages)
	for page := 0; page < numberOfPages; page++ {
		start := page * postsPerPage
		end := min((page+1)*postsPerPage, totalCount)

		items := make([]string, 0, end-start)
		for _, p := range posts[start:end] {
			items = append(items, p.ID)
		}

		metadata := PageMetadata{
			Permalink:       permalink(page),
			Page:            page + 1,
			PostsPerPage:    postsPerPage,
			TotalPages:      numberOfPages,
			TotalCount:      totalCount,
			BlogDescription: params.BlogDescription,
			BlogTitle:       params.BlogTitle,
		}
		if page != 0 {
			metadata.PreviousPage = permalink(page - 1)
		}
		if page < numberOfPages-1 {
			metadata.NextPage = permalink(page + 1)
		}

		pages = append(pages, Page{Items: items, Metadata: metadata})
	}

	return pages
}

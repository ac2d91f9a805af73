package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// pageWindow is the number of page links shown around the current page.
const pageWindow = 2

// Pagination holds pagination data for list templates.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int64
	PerPage     int
	Links       []PageLink
	BaseURL     string
	QueryString string
}

// PageLink is one entry of the page number bar. Gap entries render as an ellipsis.
type PageLink struct {
	Number    int
	URL       string
	IsCurrent bool
	Gap       bool
}

// parsePageParam reads ?page=N, defaulting to 1 for missing or invalid values.
func parsePageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// totalPages returns the page count for totalItems, never less than one.
func totalPages(totalItems int64, perPage int) int {
	if perPage <= 0 || totalItems <= 0 {
		return 1
	}
	return int((totalItems + int64(perPage) - 1) / int64(perPage))
}

// clampPage keeps page within [1, total].
func clampPage(page, total int) int {
	return max(1, min(page, total))
}

// buildPagination creates pagination data. Query parameters other than page
// are carried over into every link so filters survive paging.
func buildPagination(currentPage int, totalItems int64, perPage int, baseURL string, query url.Values) Pagination {
	p := Pagination{
		TotalPages: totalPages(totalItems, perPage),
		TotalItems: totalItems,
		PerPage:    perPage,
		BaseURL:    baseURL,
	}
	p.CurrentPage = clampPage(currentPage, p.TotalPages)

	kept := make(url.Values)
	for k, v := range query {
		if k != "page" && len(v) > 0 && v[0] != "" {
			kept[k] = v
		}
	}
	p.QueryString = kept.Encode()

	start := max(1, p.CurrentPage-pageWindow)
	end := min(p.TotalPages, p.CurrentPage+pageWindow)

	if start > 1 {
		p.Links = append(p.Links, PageLink{Number: 1, URL: p.PageURL(1)})
		if start > 2 {
			p.Links = append(p.Links, PageLink{Gap: true})
		}
	}
	for i := start; i <= end; i++ {
		p.Links = append(p.Links, PageLink{Number: i, URL: p.PageURL(i), IsCurrent: i == p.CurrentPage})
	}
	if end < p.TotalPages {
		if end < p.TotalPages-1 {
			p.Links = append(p.Links, PageLink{Gap: true})
		}
		p.Links = append(p.Links, PageLink{Number: p.TotalPages, URL: p.PageURL(p.TotalPages)})
	}

	return p
}

// PageURL returns the URL for a specific page number.
func (p Pagination) PageURL(page int) string {
	if p.QueryString != "" {
		return fmt.Sprintf("%s?%s&page=%d", p.BaseURL, p.QueryString, page)
	}
	return fmt.Sprintf("%s?page=%d", p.BaseURL, page)
}

func (p Pagination) HasPrev() bool { return p.CurrentPage > 1 }
func (p Pagination) HasNext() bool { return p.CurrentPage < p.TotalPages }

func (p Pagination) PrevURL() string { return p.PageURL(p.CurrentPage - 1) }
func (p Pagination) NextURL() string { return p.PageURL(p.CurrentPage + 1) }

// Offset returns the row offset of the current page.
func (p Pagination) Offset() int64 {
	return int64((p.CurrentPage - 1) * p.PerPage)
}

// ShouldShow reports whether there is more than one page.
func (p Pagination) ShouldShow() bool {
	return p.TotalPages > 1
}

// PageRange describes the items on the current page, e.g. "26-50".
func (p Pagination) PageRange() string {
	if p.TotalItems == 0 {
		return "0"
	}
	start := int64(p.CurrentPage-1)*int64(p.PerPage) + 1
	end := min(int64(p.CurrentPage)*int64(p.PerPage), p.TotalItems)
	return fmt.Sprintf("%d-%d", start, end)
}

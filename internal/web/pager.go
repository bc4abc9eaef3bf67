// Package web serves the browsing front end: the full page shell plus the
// htmx fragments for the product grid and the search dropdown.
package web

import "strconv"

// DefaultPageSize is the fixed number of products per grid page.
const DefaultPageSize = 10

// Pager tracks the grid's position within the catalog. Page is 1-based;
// Total is the catalog's reported product count and is zero until a
// fetch has completed.
type Pager struct {
	Page     int
	PageSize int
	Total    int
}

// NewPager returns a Pager on the given page, clamping page numbers
// below 1 up to the first page.
func NewPager(page, pageSize int) Pager {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return Pager{Page: page, PageSize: pageSize}
}

// PageParam parses a page number from its URL query representation.
// Anything missing, malformed, or below 1 means page 1.
func PageParam(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Offset returns the number of products to skip for the current page.
func (p Pager) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages returns ceil(Total/PageSize).
func (p Pager) TotalPages() int {
	if p.PageSize < 1 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// HasPrev reports whether a previous page exists.
func (p Pager) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a further page exists.
func (p Pager) HasNext() bool {
	return p.Page < p.TotalPages()
}

// Prev retreats one page. At the first page it is a no-op.
func (p Pager) Prev() Pager {
	if !p.HasPrev() {
		return p
	}
	p.Page--
	return p
}

// Next advances one page. At the last page it is a no-op.
func (p Pager) Next() Pager {
	if !p.HasNext() {
		return p
	}
	p.Page++
	return p
}

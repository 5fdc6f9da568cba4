package entity

// Page selects one page of a listing. Page is 1-based.
type Page struct {
	Page    int
	PerPage int
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// NewPage clamps page to at least 1 and perPage to [1, maxPerPage], using defaultPerPage when unset.
func NewPage(page, perPage, defaultPerPage, maxPerPage int) Page {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return Page{Page: page, PerPage: perPage}
}

// Pagination describes a page of results in responses.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// NewPagination derives page counts for total rows.
func NewPagination(p Page, total int64) Pagination {
	pages := 0
	if p.PerPage > 0 {
		pages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	}

	return Pagination{
		Page:    p.Page,
		PerPage: p.PerPage,
		Total:   total,
		Pages:   pages,
		HasNext: p.Page < pages,
		HasPrev: p.Page > 1,
	}
}

package screen

import "fmt"

// Pagination tracks the current position in a paged collection. The page
// is always within [1, max(totalPages, 1)].
type Pagination struct {
	Page       int
	TotalPages int
}

// NewPagination clamps the given position into a valid Pagination.
func NewPagination(page, totalPages int) Pagination {
	if totalPages < 0 {
		totalPages = 0
	}
	upper := totalPages
	if upper < 1 {
		upper = 1
	}
	if page < 1 {
		page = 1
	}
	if page > upper {
		page = upper
	}
	return Pagination{Page: page, TotalPages: totalPages}
}

// Prev steps one page back. ok is false when already on the first page;
// the position is unchanged in that case.
func (p Pagination) Prev() (Pagination, bool) {
	if p.Page <= 1 {
		return p, false
	}
	return NewPagination(p.Page-1, p.TotalPages), true
}

// Next steps one page forward. ok is false when already on the last page.
func (p Pagination) Next() (Pagination, bool) {
	if p.Page >= p.TotalPages {
		return p, false
	}
	return NewPagination(p.Page+1, p.TotalPages), true
}

func (p Pagination) String() string {
	return fmt.Sprintf("%d / %d", p.Page, p.TotalPages)
}

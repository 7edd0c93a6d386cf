package entity

// Pagination describes one page of a listing.
type Pagination struct {
	CurrentPage     int   `json:"current_page"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
	NextPage        int   `json:"next_page"`
	PreviousPage    int   `json:"previous_page"`
	LastPage        int   `json:"last_page"`
	TotalItems      int64 `json:"total_items"`
}

// NewPagination computes navigation for page (1-based) with pageSize items per page.
func NewPagination(page, pageSize int, totalItems int64) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	lastPage := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	if lastPage < 1 {
		lastPage = 1
	}

	return Pagination{
		CurrentPage:     page,
		HasNextPage:     int64(page*pageSize) < totalItems,
		HasPreviousPage: page > 1,
		NextPage:        page + 1,
		PreviousPage:    page - 1,
		LastPage:        lastPage,
		TotalItems:      totalItems,
	}
}

// Offset returns the row offset of page.
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}

	return (page - 1) * pageSize
}

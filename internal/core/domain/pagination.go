package domain

import "math"

// Pagination describes one page of a filtered result set. From and To are
// 1-based positions within the set and are both 0 when the page is empty.
type Pagination struct {
	Total       int
	PerPage     int
	CurrentPage int
	LastPage    int
	From        int
	To          int
}

func NewPagination(total, page, perPage int) Pagination {
	if perPage < 1 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}

	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	p := Pagination{
		Total:       total,
		PerPage:     perPage,
		CurrentPage: page,
		LastPage:    lastPage,
	}

	if total == 0 || page > lastPage {
		return p
	}
	offset := (page - 1) * perPage

	p.From = offset + 1
	p.To = offset + perPage
	if p.To > total {
		p.To = total
	}
	return p
}

func pageOffset(page, perPage int) int {
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}

package domain

import "math"

// Default and maximum page sizes for list queries.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps Offset from overflowing at any page size up to MaxPageSize.
	MaxPage = math.MaxInt / MaxPageSize
)

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	return (min(p.Page, MaxPage) - 1) * min(p.PageSize, MaxPageSize)
}

// Normalize clamps the params into the accepted range.
func (p PaginationParams) Normalize() PaginationParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Page is one page of a list result together with the total number of matching rows.
type Page[T any] struct {
	Items  []T
	Total  int
	Params PaginationParams
}

package pagination

import (
	"math"

	"gorm.io/gorm"
)

// DefaultPerPage is used when per_page is not provided.
const DefaultPerPage = 20

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// Requested reports whether the client asked for a page size.
func (p PageRequest) Requested() bool {
	return p.PerPage > 0
}

// Defaults fills in default values when page or per_page are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PerPage == 0 {
		p.PerPage = DefaultPerPage
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Meta describes the position of a page within the full result.
type Meta struct {
	Page       int   `json:"current_page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total"`
	TotalPages int   `json:"last_page"`
}

// NewMeta computes page metadata for the given total count.
func NewMeta(page, perPage int, totalItems int64) Meta {
	totalPages := 0
	if perPage > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(perPage)))
	}
	return Meta{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data []T `json:"data"`
	Meta
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, perPage int, totalItems int64) PageResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data: data,
		Meta: NewMeta(page, perPage, totalItems),
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.PerPage)
	}
}

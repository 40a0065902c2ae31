package kernel

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationOptions carries page-based listing parameters.
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize clamps the options to sane values.
func (p PaginationOptions) Normalize() PaginationOptions {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Limit returns the SQL LIMIT for the options.
func (p PaginationOptions) Limit() int {
	return p.Normalize().PageSize
}

// Offset returns the SQL OFFSET for the options.
func (p PaginationOptions) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}

// Paginated wraps a page of items with the total count.
type Paginated[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// NewPaginated builds a page result from normalized options.
func NewPaginated[T any](items []T, total int64, opts PaginationOptions) *Paginated[T] {
	n := opts.Normalize()
	return &Paginated[T]{
		Items:    items,
		Total:    total,
		Page:     n.Page,
		PageSize: n.PageSize,
	}
}

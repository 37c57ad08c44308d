package domain

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps (MaxPage-1)*MaxPageSize well inside int.
	MaxPage = 1_000_000
)

type Page struct {
	Page     int
	PageSize int
}

// Normalize clamps the page into the supported range.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
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

func (p Page) Limit() int { return p.Normalize().PageSize }

func (p Page) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}

type PageResult[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func NewPageResult[T any](items []T, total int, p Page) *PageResult[T] {
	n := p.Normalize()
	if items == nil {
		items = []T{}
	}
	return &PageResult[T]{Items: items, Total: total, Page: n.Page, PageSize: n.PageSize}
}

// Summary is the admin console read model.
type Summary struct {
	Bookings     map[BookingStatus]int     `json:"bookings"`
	Applications map[ApplicationStatus]int `json:"applications"`
}

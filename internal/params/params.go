package params

import "math"

const (
	DefaultLimit = 9
	MaxLimit     = 30
)

// Pagination is a page window over an in-memory list plus its metadata.
//
//	catalog page 2 at 9 per page
//	→ Paginate(2, 9) → Pagination{Limit:9, Page:2, Offset:9}
//	→ ComputeMeta(len(catalog)) fills TotalPages, HasNext, etc.
//	→ Bounds(len(catalog)) gives the slice window
type Pagination struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	Page       int  `json:"page"` // 1-based
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Paginate clamps page and limit into a usable window.
func Paginate(page, limit int) Pagination {
	p := Pagination{Limit: DefaultLimit, Page: 1}

	switch {
	case limit <= 0:
		p.Limit = DefaultLimit
	case limit > MaxLimit:
		p.Limit = MaxLimit
	default:
		p.Limit = limit
	}

	if page > 0 {
		p.Page = min(page, math.MaxInt/p.Limit)
	}

	p.Offset = (p.Page - 1) * p.Limit
	return p
}

// ComputeMeta fills the totals for a list of total items.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	if p.Limit > 0 {
		p.TotalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	p.HasPrev = p.Page > 1
	p.HasNext = (p.Page * p.Limit) < total
}

// Bounds returns the [start, end) window of a list of n items.
func (p Pagination) Bounds(n int) (int, int) {
	start := min(max(p.Offset, 0), n)
	end := min(start+p.Limit, n)
	return start, end
}

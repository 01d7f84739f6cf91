// Package pagination pages the ledger, payout and review-queue listings.
package pagination

import (
	"math"

	"gorm.io/gorm"
)

// Listing holds the page sizes one kind of listing allows.
type Listing struct {
	DefaultSize int
	MaxSize     int
}

var (
	// Queues covers deals, distribution requests, pending deposits,
	// notifications and audit rows.
	Queues = Listing{DefaultSize: 20, MaxSize: 100}

	// Ledger covers wallet statements, which reconciliation reads in long runs.
	Ledger = Listing{DefaultSize: 50, MaxSize: 500}

	// Payouts covers per-deal profit distribution rows: one row per
	// investment for every distribution, so a deal's history grows quickly.
	Payouts = Listing{DefaultSize: 50, MaxSize: 500}
)

// PageRequest holds pagination parameters parsed from query strings. The
// binding ceiling is the largest listing maximum; Normalize applies the
// listing's own limit.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=500"`
}

// Normalize fills in the listing's defaults and caps page_size at its maximum.
func (p *PageRequest) Normalize(l Listing) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = l.DefaultSize
	}
	if p.PageSize > l.MaxSize {
		p.PageSize = l.MaxSize
	}
}

// Defaults normalizes the request for a review-queue listing.
func (p *PageRequest) Defaults() {
	p.Normalize(Queues)
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps one page of rows with the totals a client needs to walk
// the rest.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// NewPageResponse builds a PageResponse. Data is never null in JSON.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
	}
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

// Paginate is a GORM scope applying the request's OFFSET and LIMIT.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}

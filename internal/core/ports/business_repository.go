package ports

import (
	"context"

	"github.com/localspot/directory-api/internal/core/domain"
)

// Sort orders recognised by the listing query. Anything else falls back to
// SortNewest.
const (
	SortNewest  = "newest"
	SortPopular = "popular"
)

// ListBusinessesFilter carries the normalised listing query. All provided
// filters are AND'ed together; Keyword alone fans out into an OR across
// name, description and service names.
type ListBusinessesFilter struct {
	Category string // exact, case-sensitive match
	City     string // case-insensitive substring
	Keyword  string // case-insensitive substring across name/description/service names
	SortBy   string // SortNewest or SortPopular
	Page     int    // 1-based
	Limit    int    // max rows per page
}

// BusinessRepository defines persistence operations for listings.
type BusinessRepository interface {
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
	FindByID(ctx context.Context, id string) (*domain.Business, error)
	FindByOwner(ctx context.Context, ownerID string) (*domain.Business, error)
	// List returns a page of businesses matching filter and the total count
	// ignoring pagination.
	List(ctx context.Context, filter ListBusinessesFilter) ([]*domain.Business, int64, error)
	Update(ctx context.Context, b *domain.Business) (*domain.Business, error)
	// SetViews overwrites the stored view counter. Paired with FindByID this
	// is a plain read-modify-write: concurrent increments may lose updates,
	// which is accepted for an informational counter.
	SetViews(ctx context.Context, id string, views int64) error
	Delete(ctx context.Context, id string) error
}

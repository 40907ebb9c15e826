package ports

import (
	"context"

	"github.com/localspot/directory-api/internal/core/domain"
)

// FavoriteRepository defines persistence operations for favorites. Create
// must map a storage-level duplicate of the (user, business) pair to
// domain.ErrFavoriteExists; the unique index, not the caller's pre-check, is
// the source of truth.
type FavoriteRepository interface {
	Create(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error)
	Find(ctx context.Context, userID, businessID string) (*domain.Favorite, error)
	Delete(ctx context.Context, userID, businessID string) error
	// ListByUser returns the user's favorites newest-first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error)
	// DeleteByBusiness removes every favorite referencing the business; used
	// for referential cleanup when a listing is deleted.
	DeleteByBusiness(ctx context.Context, businessID string) error
}

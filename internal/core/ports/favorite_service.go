package ports

import (
	"context"

	"github.com/localspot/directory-api/internal/core/domain"
)

// FavoriteView is a favorite joined with its business and the business
// owner's public fields.
type FavoriteView struct {
	Favorite *domain.Favorite `json:"favorite"`
	Business *BusinessView    `json:"business"`
}

// FavoriteService defines use-case operations for a regular user's bookmarks.
type FavoriteService interface {
	Add(ctx context.Context, userID, businessID string) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, businessID string) error
	List(ctx context.Context, userID string) ([]FavoriteView, error)
	// Check reports whether the pair exists; a missing business is not an
	// error, it is simply not favorited.
	Check(ctx context.Context, userID, businessID string) (bool, error)
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/localspot/directory-api/internal/core/domain"
	"github.com/localspot/directory-api/internal/core/ports"
)

// FavoriteService implements a regular user's bookmark operations.
type FavoriteService struct {
	repo       ports.FavoriteRepository
	businesses ports.BusinessRepository
	users      ports.AuthRepository
	logger     zerolog.Logger
}

func NewFavoriteService(
	repo ports.FavoriteRepository,
	businesses ports.BusinessRepository,
	users ports.AuthRepository,
	logger zerolog.Logger,
) *FavoriteService {
	return &FavoriteService{repo: repo, businesses: businesses, users: users, logger: logger}
}

func (s *FavoriteService) Add(ctx context.Context, userID, businessID string) (*domain.Favorite, error) {
	if _, err := s.businesses.FindByID(ctx, businessID); err != nil {
		return nil, err
	}

	// Friendlier error for the common case; the unique index still catches
	// the race where two adds pass this check concurrently.
	if _, err := s.repo.Find(ctx, userID, businessID); err == nil {
		return nil, domain.ErrFavoriteExists
	} else if err != domain.ErrFavoriteNotFound {
		return nil, err
	}

	favorite := &domain.Favorite{
		UserID:     userID,
		BusinessID: businessID,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, favorite)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("business_id", businessID).Msg("favorite added")
	return created, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, businessID string) error {
	if err := s.repo.Delete(ctx, userID, businessID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Str("business_id", businessID).Msg("favorite removed")
	return nil
}

// List returns the user's favorites newest-first, each joined with its
// business and the owner's public name and email.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]ports.FavoriteView, error) {
	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.FavoriteView, 0, len(favorites))
	ownerIDs := make([]string, 0, len(favorites))
	businesses := make([]*domain.Business, 0, len(favorites))

	for _, f := range favorites {
		business, err := s.businesses.FindByID(ctx, f.BusinessID)
		if err == domain.ErrBusinessNotFound {
			// Dangling reference (cleanup raced the delete); skip it.
			continue
		}
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, business)
		ownerIDs = append(ownerIDs, business.OwnerID)
		views = append(views, ports.FavoriteView{Favorite: f})
	}

	owners := map[string]*domain.User{}
	if len(ownerIDs) > 0 {
		owners, err = s.users.FindByIDs(ctx, ownerIDs)
		if err != nil {
			return nil, err
		}
	}

	for i, business := range businesses {
		view := &ports.BusinessView{Business: business}
		if owner, ok := owners[business.OwnerID]; ok {
			view.Owner = ports.OwnerSummary{Name: owner.Name, Email: owner.Email}
		}
		views[i].Business = view
	}
	return views, nil
}

func (s *FavoriteService) Check(ctx context.Context, userID, businessID string) (bool, error) {
	_, err := s.repo.Find(ctx, userID, businessID)
	if err == domain.ErrFavoriteNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/localspot/directory-api/internal/core/domain"
	"github.com/localspot/directory-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// BusinessService implements listing use cases: the public browse/search
// query, the single-listing read with its view-counter side effect, and the
// owner-scoped mutations.
type BusinessService struct {
	repo      ports.BusinessRepository
	users     ports.AuthRepository
	favorites ports.FavoriteRepository
	logos     ports.LogoStore       // optional
	cache     ports.ListingCache    // optional
	views     ports.ViewEventSink   // optional
	logger    zerolog.Logger
}

func NewBusinessService(
	repo ports.BusinessRepository,
	users ports.AuthRepository,
	favorites ports.FavoriteRepository,
	logos ports.LogoStore,
	cache ports.ListingCache,
	views ports.ViewEventSink,
	logger zerolog.Logger,
) *BusinessService {
	return &BusinessService{
		repo:      repo,
		users:     users,
		favorites: favorites,
		logos:     logos,
		cache:     cache,
		views:     views,
		logger:    logger,
	}
}

func (s *BusinessService) Create(ctx context.Context, ownerID string, in ports.BusinessInput) (*domain.Business, error) {
	if !domain.Category(in.Category).IsValid() {
		return nil, domain.ErrInvalidCategory
	}

	// Pre-check, not a constraint: two concurrent creates by the same owner
	// can both pass. Known gap carried over from the original design.
	if _, err := s.repo.FindByOwner(ctx, ownerID); err == nil {
		return nil, domain.ErrBusinessExists
	} else if err != domain.ErrBusinessNotFound {
		return nil, err
	}

	now := time.Now().UTC()
	business := toBusiness(in)
	business.OwnerID = ownerID
	business.Views = 0
	business.CreatedAt = now
	business.UpdatedAt = now

	created, err := s.repo.Create(ctx, business)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create business")
		return nil, err
	}

	s.invalidateListings(ctx)
	s.logger.Info().Str("business_id", created.ID).Str("owner_id", ownerID).Msg("business created")
	return created, nil
}

// Get returns one listing with its owner's public fields and bumps the view
// counter. The counter update is a read-modify-write without compare-and-swap:
// concurrent readers may lose increments, accepted for an informational count.
func (s *BusinessService) Get(ctx context.Context, id string) (*ports.BusinessView, error) {
	business, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	business.Views++
	if err := s.repo.SetViews(ctx, business.ID, business.Views); err != nil {
		return nil, err
	}

	if s.views != nil {
		s.views.Enqueue(ports.ViewEventInput{
			BusinessID: business.ID,
			Category:   string(business.Category),
			ViewedAt:   time.Now().UTC(),
		})
	}

	return s.withOwner(ctx, business)
}

func (s *BusinessService) GetMine(ctx context.Context, ownerID string) (*ports.BusinessView, error) {
	business, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.withOwner(ctx, business)
}

func (s *BusinessService) List(ctx context.Context, in ports.ListBusinessesInput) (*ports.ListBusinessesResult, error) {
	filter := normalizeFilter(in)

	cacheKey := listingCacheKey(filter)
	if s.cache != nil {
		if payload, ok := s.cache.Get(ctx, cacheKey); ok {
			var cached ports.ListBusinessesResult
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	businesses, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("listing query failed")
		return nil, err
	}

	items, err := s.withOwners(ctx, businesses)
	if err != nil {
		return nil, err
	}

	result := &ports.ListBusinessesResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}

	if s.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			s.cache.Set(ctx, cacheKey, payload)
		}
	}
	return result, nil
}

func (s *BusinessService) Update(ctx context.Context, id, ownerID string, in ports.BusinessInput) (*domain.Business, error) {
	business, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	if !domain.Category(in.Category).IsValid() {
		return nil, domain.ErrInvalidCategory
	}

	updated := toBusiness(in)
	updated.ID = business.ID
	updated.OwnerID = business.OwnerID
	updated.Logo = business.Logo
	updated.LogoKey = business.LogoKey
	updated.Views = business.Views
	updated.CreatedAt = business.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	saved, err := s.repo.Update(ctx, updated)
	if err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	return saved, nil
}

func (s *BusinessService) Delete(ctx context.Context, id, ownerID string) error {
	business, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if business.OwnerID != ownerID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Referential cleanup owed to favorites; failure leaves orphans behind,
	// so it is surfaced rather than swallowed.
	if err := s.favorites.DeleteByBusiness(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("business_id", id).Msg("favorite cleanup failed")
		return err
	}

	if s.logos != nil && business.LogoKey != "" {
		if err := s.logos.Delete(ctx, business.LogoKey); err != nil {
			s.logger.Warn().Err(err).Str("business_id", id).Msg("failed to delete logo object")
		}
	}

	s.invalidateListings(ctx)
	s.logger.Info().Str("business_id", id).Str("owner_id", ownerID).Msg("business deleted")
	return nil
}

func (s *BusinessService) SetLogo(ctx context.Context, ownerID string, upload ports.LogoUpload) (*domain.Business, error) {
	if s.logos == nil {
		return nil, fmt.Errorf("logo storage not configured")
	}

	business, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	key := "logos/" + uuid.NewString() + path.Ext(upload.Filename)
	url, err := s.logos.Upload(ctx, key, upload.ContentType, upload.Body)
	if err != nil {
		return nil, fmt.Errorf("upload logo: %w", err)
	}

	oldKey := business.LogoKey
	business.Logo = url
	business.LogoKey = key
	business.UpdatedAt = time.Now().UTC()

	saved, err := s.repo.Update(ctx, business)
	if err != nil {
		// The new object is orphaned if the record update fails; remove it.
		_ = s.logos.Delete(ctx, key)
		return nil, err
	}

	if oldKey != "" && oldKey != key {
		if err := s.logos.Delete(ctx, oldKey); err != nil {
			s.logger.Warn().Err(err).Str("key", oldKey).Msg("failed to delete previous logo")
		}
	}

	s.invalidateListings(ctx)
	return saved, nil
}

// normalizeFilter applies the documented defaulting rules: page and limit
// fall back to 1 and 10 (limit capped at 100) and unrecognised sort values
// become newest-first. Unknown categories pass through untouched and simply
// match nothing.
func normalizeFilter(in ports.ListBusinessesInput) ports.ListBusinessesFilter {
	page := in.Page
	if page < 1 {
		page = defaultPage
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	sortBy := in.SortBy
	if sortBy != ports.SortPopular {
		sortBy = ports.SortNewest
	}
	return ports.ListBusinessesFilter{
		Category: in.Category,
		City:     in.City,
		Keyword:  in.Keyword,
		SortBy:   sortBy,
		Page:     page,
		Limit:    limit,
	}
}

func listingCacheKey(f ports.ListBusinessesFilter) string {
	return fmt.Sprintf("%s|%s|%s|%s|%d|%d", f.Category, f.City, f.Keyword, f.SortBy, f.Page, f.Limit)
}

func (s *BusinessService) invalidateListings(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func (s *BusinessService) withOwner(ctx context.Context, b *domain.Business) (*ports.BusinessView, error) {
	view := &ports.BusinessView{Business: b}
	owner, err := s.users.FindByID(ctx, b.OwnerID)
	if err == nil {
		view.Owner = ports.OwnerSummary{Name: owner.Name, Email: owner.Email}
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}
	return view, nil
}

func (s *BusinessService) withOwners(ctx context.Context, businesses []*domain.Business) ([]ports.BusinessView, error) {
	ids := make([]string, 0, len(businesses))
	for _, b := range businesses {
		ids = append(ids, b.OwnerID)
	}

	owners := map[string]*domain.User{}
	if len(ids) > 0 {
		var err error
		owners, err = s.users.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	items := make([]ports.BusinessView, 0, len(businesses))
	for _, b := range businesses {
		view := ports.BusinessView{Business: b}
		if owner, ok := owners[b.OwnerID]; ok {
			view.Owner = ports.OwnerSummary{Name: owner.Name, Email: owner.Email}
		}
		items = append(items, view)
	}
	return items, nil
}

func toBusiness(in ports.BusinessInput) *domain.Business {
	services := make([]domain.Service, 0, len(in.Services))
	for _, svc := range in.Services {
		services = append(services, domain.Service{
			Name:        svc.Name,
			Description: svc.Description,
			Price:       svc.Price,
		})
	}
	return &domain.Business{
		Name:        in.Name,
		Description: in.Description,
		Category:    domain.Category(in.Category),
		Location: domain.Location{
			Address: in.Location.Address,
			City:    in.Location.City,
			State:   in.Location.State,
			ZipCode: in.Location.ZipCode,
		},
		Contact: domain.Contact{
			Phone:   in.Contact.Phone,
			Email:   in.Contact.Email,
			Website: in.Contact.Website,
		},
		Services: services,
	}
}

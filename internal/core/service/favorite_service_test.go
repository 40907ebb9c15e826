package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/localspot/directory-api/internal/core/domain"
)

func newFavoriteFixture(t *testing.T) (*FavoriteService, *memBusinessRepo, *stubAuthRepo, *memFavoriteRepo, *domain.Business) {
	t.Helper()
	businesses := newMemBusinessRepo()
	users := newStubAuthRepo()
	favorites := newMemFavoriteRepo()
	svc := NewFavoriteService(favorites, businesses, users, zerolog.Nop())

	owner := seedOwner(t, users, "Owner Name", "owner@example.com")
	businessSvc := newBusinessService(businesses, users, favorites)
	business, err := businessSvc.Create(context.Background(), owner.ID, validInput("Diner", "Springfield"))
	if err != nil {
		t.Fatalf("seed business: %v", err)
	}
	return svc, businesses, users, favorites, business
}

func TestFavoriteService_AddRemoveRoundTrip(t *testing.T) {
	svc, _, _, _, business := newFavoriteFixture(t)

	favorite, err := svc.Add(context.Background(), "user-9", business.ID)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if favorite.UserID != "user-9" || favorite.BusinessID != business.ID {
		t.Fatalf("unexpected favorite %+v", favorite)
	}

	favorited, err := svc.Check(context.Background(), "user-9", business.ID)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !favorited {
		t.Fatalf("expected favorited after add")
	}

	if err := svc.Remove(context.Background(), "user-9", business.ID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	favorited, err = svc.Check(context.Background(), "user-9", business.ID)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if favorited {
		t.Fatalf("expected not favorited after remove")
	}
}

func TestFavoriteService_Add_Duplicate(t *testing.T) {
	svc, _, _, _, business := newFavoriteFixture(t)

	if _, err := svc.Add(context.Background(), "user-9", business.ID); err != nil {
		t.Fatalf("first Add returned error: %v", err)
	}
	if _, err := svc.Add(context.Background(), "user-9", business.ID); err != domain.ErrFavoriteExists {
		t.Fatalf("expected ErrFavoriteExists, got %v", err)
	}
}

func TestFavoriteService_Add_UnknownBusiness(t *testing.T) {
	svc, _, _, _, _ := newFavoriteFixture(t)

	if _, err := svc.Add(context.Background(), "user-9", "no-such-business"); err != domain.ErrBusinessNotFound {
		t.Fatalf("expected ErrBusinessNotFound, got %v", err)
	}
}

func TestFavoriteService_Remove_NotFavorited(t *testing.T) {
	svc, _, _, _, business := newFavoriteFixture(t)

	if err := svc.Remove(context.Background(), "user-9", business.ID); err != domain.ErrFavoriteNotFound {
		t.Fatalf("expected ErrFavoriteNotFound, got %v", err)
	}
}

func TestFavoriteService_Check_UnknownBusiness(t *testing.T) {
	svc, _, _, _, _ := newFavoriteFixture(t)

	// An unknown business is simply not favorited, never an error.
	favorited, err := svc.Check(context.Background(), "user-9", "no-such-business")
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if favorited {
		t.Fatalf("expected false for unknown business")
	}
}

func TestFavoriteService_List_JoinsBusinessAndOwner(t *testing.T) {
	svc, _, _, _, business := newFavoriteFixture(t)

	if _, err := svc.Add(context.Background(), "user-9", business.ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	views, err := svc.List(context.Background(), "user-9")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(views))
	}
	if views[0].Business.Business.ID != business.ID {
		t.Fatalf("expected business joined in")
	}
	if views[0].Business.Owner.Name != "Owner Name" || views[0].Business.Owner.Email != "owner@example.com" {
		t.Fatalf("unexpected owner summary: %+v", views[0].Business.Owner)
	}
}

func TestFavoriteService_List_SkipsDanglingReferences(t *testing.T) {
	svc, _, _, favorites, business := newFavoriteFixture(t)

	if _, err := svc.Add(context.Background(), "user-9", business.ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	// The "gone" id was never created, so this favorite dangles.
	if _, err := favorites.Create(context.Background(), &domain.Favorite{UserID: "user-9", BusinessID: "gone"}); err != nil {
		t.Fatalf("seed dangling favorite: %v", err)
	}

	views, err := svc.List(context.Background(), "user-9")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected dangling favorite skipped, got %d entries", len(views))
	}
	if views[0].Favorite.BusinessID != business.ID {
		t.Fatalf("unexpected favorite %+v", views[0].Favorite)
	}
}

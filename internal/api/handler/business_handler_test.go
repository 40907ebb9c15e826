package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/localspot/directory-api/internal/api/middleware"
	"github.com/localspot/directory-api/internal/core/domain"
	"github.com/localspot/directory-api/internal/core/ports"
)

type stubBusinessService struct {
	createFn  func(ctx context.Context, ownerID string, in ports.BusinessInput) (*domain.Business, error)
	getFn     func(ctx context.Context, id string) (*ports.BusinessView, error)
	getMineFn func(ctx context.Context, ownerID string) (*ports.BusinessView, error)
	listFn    func(ctx context.Context, in ports.ListBusinessesInput) (*ports.ListBusinessesResult, error)
	updateFn  func(ctx context.Context, id, ownerID string, in ports.BusinessInput) (*domain.Business, error)
	deleteFn  func(ctx context.Context, id, ownerID string) error
	setLogoFn func(ctx context.Context, ownerID string, upload ports.LogoUpload) (*domain.Business, error)
}

func (s *stubBusinessService) Create(ctx context.Context, ownerID string, in ports.BusinessInput) (*domain.Business, error) {
	return s.createFn(ctx, ownerID, in)
}

func (s *stubBusinessService) Get(ctx context.Context, id string) (*ports.BusinessView, error) {
	return s.getFn(ctx, id)
}

func (s *stubBusinessService) GetMine(ctx context.Context, ownerID string) (*ports.BusinessView, error) {
	return s.getMineFn(ctx, ownerID)
}

func (s *stubBusinessService) List(ctx context.Context, in ports.ListBusinessesInput) (*ports.ListBusinessesResult, error) {
	return s.listFn(ctx, in)
}

func (s *stubBusinessService) Update(ctx context.Context, id, ownerID string, in ports.BusinessInput) (*domain.Business, error) {
	return s.updateFn(ctx, id, ownerID, in)
}

func (s *stubBusinessService) Delete(ctx context.Context, id, ownerID string) error {
	return s.deleteFn(ctx, id, ownerID)
}

func (s *stubBusinessService) SetLogo(ctx context.Context, ownerID string, upload ports.LogoUpload) (*domain.Business, error) {
	return s.setLogoFn(ctx, ownerID, upload)
}

func sampleBusiness() *domain.Business {
	return &domain.Business{
		ID:          "biz-1",
		OwnerID:     "user-1",
		Name:        "Diner",
		Description: "a perfectly adequate description",
		Category:    domain.CategoryRestaurant,
		Location:    domain.Location{Address: "1 Main St", City: "Springfield"},
		Contact:     domain.Contact{Phone: "555-0100", Email: "biz@example.com"},
		Views:       7,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func TestBusinessHandler_List_Envelope(t *testing.T) {
	e := echo.New()
	stub := &stubBusinessService{
		listFn: func(_ context.Context, in ports.ListBusinessesInput) (*ports.ListBusinessesResult, error) {
			return &ports.ListBusinessesResult{
				Items:      []ports.BusinessView{{Business: sampleBusiness()}},
				Total:      25,
				Page:       2,
				Limit:      10,
				TotalPages: 3,
			}, nil
		},
	}
	handler := NewBusinessHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/businesses?page=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success true")
	}
	if resp["count"] != float64(1) || resp["total"] != float64(25) {
		t.Fatalf("unexpected counts: %+v", resp)
	}
	if resp["totalPages"] != float64(3) || resp["currentPage"] != float64(2) {
		t.Fatalf("unexpected pagination fields: %+v", resp)
	}
}

func TestBusinessHandler_List_QueryParsing(t *testing.T) {
	e := echo.New()
	var got ports.ListBusinessesInput
	stub := &stubBusinessService{
		listFn: func(_ context.Context, in ports.ListBusinessesInput) (*ports.ListBusinessesResult, error) {
			got = in
			return &ports.ListBusinessesResult{Page: 1, Limit: 10}, nil
		},
	}
	handler := NewBusinessHandler(stub)

	// Garbage page and limit fall back to the service defaults.
	req := httptest.NewRequest(http.MethodGet, "/api/businesses?category=Retail&city=spring&keyword=coffee&sortBy=popular&page=abc&limit=-5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Category != "Retail" || got.City != "spring" || got.Keyword != "coffee" || got.SortBy != "popular" {
		t.Fatalf("unexpected filter: %+v", got)
	}
	if got.Page != 0 || got.Limit != 0 {
		t.Fatalf("expected unparseable page/limit to pass through as 0, got %d/%d", got.Page, got.Limit)
	}
}

func TestBusinessHandler_Get_Success(t *testing.T) {
	e := echo.New()
	stub := &stubBusinessService{
		getFn: func(_ context.Context, id string) (*ports.BusinessView, error) {
			if id != "biz-1" {
				t.Fatalf("unexpected id %q", id)
			}
			return &ports.BusinessView{
				Business: sampleBusiness(),
				Owner:    ports.OwnerSummary{Name: "Owner", Email: "owner@example.com"},
			}, nil
		},
	}
	handler := NewBusinessHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/businesses/biz-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("biz-1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object")
	}
	if data["views"] != float64(7) {
		t.Fatalf("unexpected views: %v", data["views"])
	}
	owner, ok := data["owner"].(map[string]any)
	if !ok {
		t.Fatalf("expected owner object")
	}
	if owner["name"] != "Owner" || owner["email"] != "owner@example.com" {
		t.Fatalf("unexpected owner payload: %+v", owner)
	}
	if _, exposed := owner["password_hash"]; exposed {
		t.Fatalf("owner payload must not carry credentials")
	}
}

func TestBusinessHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubBusinessService{
		createFn: func(_ context.Context, ownerID string, in ports.BusinessInput) (*domain.Business, error) {
			if ownerID != "user-1" {
				t.Fatalf("unexpected owner %q", ownerID)
			}
			b := sampleBusiness()
			b.Name = in.Name
			return b, nil
		},
	}
	handler := NewBusinessHandler(stub)

	body := `{
		"name": "Diner",
		"description": "a perfectly adequate description",
		"category": "Restaurant",
		"location": {"address": "1 Main St", "city": "Springfield"},
		"contact": {"phone": "555-0100", "email": "biz@example.com"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/businesses", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, &domain.User{ID: "user-1", Role: domain.RoleBusinessOwner})

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestBusinessHandler_Create_ValidationFailure(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubBusinessService{
		createFn: func(_ context.Context, _ string, _ ports.BusinessInput) (*domain.Business, error) {
			t.Fatalf("service should not be reached")
			return nil, nil
		},
	}
	handler := NewBusinessHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/businesses", strings.NewReader(`{"name":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, &domain.User{ID: "user-1", Role: domain.RoleBusinessOwner})

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestBusinessHandler_Create_NoUserInContext(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewBusinessHandler(&stubBusinessService{})

	req := httptest.NewRequest(http.MethodPost, "/api/businesses", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

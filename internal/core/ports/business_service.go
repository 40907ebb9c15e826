package ports

import (
	"context"
	"io"

	"github.com/localspot/directory-api/internal/core/domain"
)

// LocationInput holds a listing address.
type LocationInput struct {
	Address string
	City    string
	State   string
	ZipCode string
}

// ContactInput holds listing contact details.
type ContactInput struct {
	Phone   string
	Email   string
	Website string
}

// ServiceInput holds one offering on a listing.
type ServiceInput struct {
	Name        string
	Description string
	Price       string
}

// BusinessInput carries all data needed to create or update a listing.
type BusinessInput struct {
	Name        string
	Description string
	Category    string
	Location    LocationInput
	Contact     ContactInput
	Services    []ServiceInput
}

// OwnerSummary is the public slice of an owner's account exposed alongside a
// listing. Never more than name and email.
type OwnerSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BusinessView is a listing joined with its owner's public fields.
type BusinessView struct {
	Business *domain.Business `json:"business"`
	Owner    OwnerSummary     `json:"owner"`
}

// ListBusinessesInput carries the raw listing query after boundary parsing.
type ListBusinessesInput struct {
	Category string
	City     string
	Keyword  string
	SortBy   string
	Page     int
	Limit    int
}

// ListBusinessesResult is one result page plus pagination totals.
type ListBusinessesResult struct {
	Items      []BusinessView
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// LogoUpload carries an uploaded logo file into the service.
type LogoUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// BusinessService defines use-case operations for listings.
type BusinessService interface {
	Create(ctx context.Context, ownerID string, in BusinessInput) (*domain.Business, error)
	// Get returns a single listing and increments its view counter as a side
	// effect; the returned view reflects the incremented value.
	Get(ctx context.Context, id string) (*BusinessView, error)
	GetMine(ctx context.Context, ownerID string) (*BusinessView, error)
	List(ctx context.Context, in ListBusinessesInput) (*ListBusinessesResult, error)
	Update(ctx context.Context, id, ownerID string, in BusinessInput) (*domain.Business, error)
	Delete(ctx context.Context, id, ownerID string) error
	SetLogo(ctx context.Context, ownerID string, upload LogoUpload) (*domain.Business, error)
}

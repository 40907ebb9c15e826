package domain

import (
	"errors"
	"time"
)

// Category is the closed set of business categories. New values are rejected
// at write time; listing filters compare against the raw string so an unknown
// category simply matches nothing.
type Category string

const (
	CategoryRestaurant           Category = "Restaurant"
	CategoryRetail               Category = "Retail"
	CategoryHealthcare           Category = "Healthcare"
	CategoryEducation            Category = "Education"
	CategoryTechnology           Category = "Technology"
	CategoryBeautySpa            Category = "Beauty & Spa"
	CategoryAutomotive           Category = "Automotive"
	CategoryRealEstate           Category = "Real Estate"
	CategoryEntertainment        Category = "Entertainment"
	CategoryProfessionalServices Category = "Professional Services"
	CategoryOther                Category = "Other"
)

var categories = []Category{
	CategoryRestaurant,
	CategoryRetail,
	CategoryHealthcare,
	CategoryEducation,
	CategoryTechnology,
	CategoryBeautySpa,
	CategoryAutomotive,
	CategoryRealEstate,
	CategoryEntertainment,
	CategoryProfessionalServices,
	CategoryOther,
}

// Categories returns the fixed category list in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrBusinessExists   = errors.New("owner already has a business profile")
	ErrInvalidCategory  = errors.New("invalid business category")
)

// Location is the physical address of a business.
type Location struct {
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
}

// Contact holds the ways to reach a business.
type Contact struct {
	Phone   string `json:"phone" bson:"phone"`
	Email   string `json:"email" bson:"email"`
	Website string `json:"website,omitempty" bson:"website,omitempty"`
}

// Service is a single offering on a listing. Price is free-form text
// ("$25/hr", "from $100"), not a monetary amount.
type Service struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Price       string `json:"price,omitempty" bson:"price,omitempty"`
}

// Business is the listing aggregate. Each owner has at most one; the limit is
// enforced by a creation-time check, not a storage constraint.
type Business struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	OwnerID     string    `json:"owner_id" bson:"owner_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Category    Category  `json:"category" bson:"category"`
	Location    Location  `json:"location" bson:"location"`
	Contact     Contact   `json:"contact" bson:"contact"`
	Logo        string    `json:"logo,omitempty" bson:"logo,omitempty"`
	LogoKey     string    `json:"-" bson:"logo_key,omitempty"`
	Services    []Service `json:"services" bson:"services"`
	Views       int64     `json:"views" bson:"views"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

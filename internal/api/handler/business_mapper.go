package handler

import (
	"time"

	"github.com/localspot/directory-api/internal/core/domain"
	"github.com/localspot/directory-api/internal/core/ports"
)

// --- Request → Service input ---

func toBusinessInput(req businessRequest) ports.BusinessInput {
	services := make([]ports.ServiceInput, 0, len(req.Services))
	for _, s := range req.Services {
		services = append(services, ports.ServiceInput{
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
		})
	}
	return ports.BusinessInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Location: ports.LocationInput{
			Address: req.Location.Address,
			City:    req.Location.City,
			State:   req.Location.State,
			ZipCode: req.Location.ZipCode,
		},
		Contact: ports.ContactInput{
			Phone:   req.Contact.Phone,
			Email:   req.Contact.Email,
			Website: req.Contact.Website,
		},
		Services: services,
	}
}

// --- Service result → HTTP response ---

// Response-only types owned by the transport layer, kept separate from the
// domain so the JSON contract survives internal changes. The owner object
// carries public fields only.

type ownerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type locationResponse struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
}

type contactResponse struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website,omitempty"`
}

type serviceResponse struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
}

type businessResponse struct {
	ID          string            `json:"id"`
	Owner       *ownerResponse    `json:"owner,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Location    locationResponse  `json:"location"`
	Contact     contactResponse   `json:"contact"`
	Logo        string            `json:"logo,omitempty"`
	Services    []serviceResponse `json:"services"`
	Views       int64             `json:"views"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type favoriteResponse struct {
	ID        string           `json:"id"`
	Business  businessResponse `json:"business"`
	CreatedAt time.Time        `json:"created_at"`
}

func toBusinessResponse(b *domain.Business, owner *ports.OwnerSummary) businessResponse {
	services := make([]serviceResponse, 0, len(b.Services))
	for _, s := range b.Services {
		services = append(services, serviceResponse{
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
		})
	}

	resp := businessResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Category:    string(b.Category),
		Location: locationResponse{
			Address: b.Location.Address,
			City:    b.Location.City,
			State:   b.Location.State,
			ZipCode: b.Location.ZipCode,
		},
		Contact: contactResponse{
			Phone:   b.Contact.Phone,
			Email:   b.Contact.Email,
			Website: b.Contact.Website,
		},
		Logo:      b.Logo,
		Services:  services,
		Views:     b.Views,
		CreatedAt: b.CreatedAt.UTC(),
		UpdatedAt: b.UpdatedAt.UTC(),
	}
	if owner != nil {
		resp.Owner = &ownerResponse{Name: owner.Name, Email: owner.Email}
	}
	return resp
}

func toViewResponse(v *ports.BusinessView) businessResponse {
	return toBusinessResponse(v.Business, &v.Owner)
}

func toListData(items []ports.BusinessView) []businessResponse {
	out := make([]businessResponse, 0, len(items))
	for i := range items {
		out = append(out, toViewResponse(&items[i]))
	}
	return out
}

func toFavoriteResponses(views []ports.FavoriteView) []favoriteResponse {
	out := make([]favoriteResponse, 0, len(views))
	for _, v := range views {
		out = append(out, favoriteResponse{
			ID:        v.Favorite.ID,
			Business:  toViewResponse(v.Business),
			CreatedAt: v.Favorite.CreatedAt.UTC(),
		})
	}
	return out
}

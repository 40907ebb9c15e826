package handler

// --- Request types ---

type locationRequest struct {
	Address string `json:"address"  validate:"required"`
	City    string `json:"city"     validate:"required"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type contactRequest struct {
	Phone   string `json:"phone"   validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Website string `json:"website"`
}

type serviceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// businessRequest covers both create and update; the category enum is
// enforced by the service against the closed domain set, the tag here only
// catches empty values early.
type businessRequest struct {
	Name        string           `json:"name"        validate:"required,min=2"`
	Description string           `json:"description" validate:"required,min=10"`
	Category    string           `json:"category"    validate:"required"`
	Location    locationRequest  `json:"location"    validate:"required"`
	Contact     contactRequest   `json:"contact"     validate:"required"`
	Services    []serviceRequest `json:"services"    validate:"dive"`
}

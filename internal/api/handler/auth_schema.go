package handler

import "github.com/localspot/directory-api/internal/core/domain"

type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=user business_owner"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authPayload is the data body for register/login responses. User never
// carries the password hash (excluded at the type level).
type authPayload struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

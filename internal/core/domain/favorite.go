package domain

import (
	"errors"
	"time"
)

var (
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrFavoriteExists   = errors.New("business already in favorites")
)

// Favorite is a bookmark from a regular user to a business. The
// (user_id, business_id) pair is unique; the storage index is the
// authoritative guard, the service pre-check only improves the error message.
type Favorite struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	UserID     string    `json:"user_id" bson:"user_id"`
	BusinessID string    `json:"business_id" bson:"business_id"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

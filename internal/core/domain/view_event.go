package domain

import "time"

// ViewEvent is one recorded read of a single business. Events are an audit
// trail for analytics; the per-listing counter lives on the Business itself.
type ViewEvent struct {
	BusinessID string    `json:"business_id" bson:"business_id"`
	Category   Category  `json:"category" bson:"category"`
	ViewedAt   time.Time `json:"viewed_at" bson:"viewed_at"`
}

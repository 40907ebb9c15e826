package ports

import (
	"context"
	"time"
)

// ViewEventInput is the DTO handed from the read path to the view pipeline.
type ViewEventInput struct {
	BusinessID string
	Category   string
	ViewedAt   time.Time
}

// ViewEventService processes a single view event. Repeat views are recorded
// as-is: there is deliberately no viewer deduplication.
type ViewEventService interface {
	Process(ctx context.Context, event ViewEventInput) error
}

// ViewEventSink accepts view events for asynchronous processing. Implemented
// by the queue dispatcher; a nil sink simply drops events.
type ViewEventSink interface {
	Enqueue(event ViewEventInput)
}

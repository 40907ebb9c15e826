package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/localspot/directory-api/internal/core/domain"
	"github.com/localspot/directory-api/internal/core/ports"
)

const viewEventsCollection = "view_events"

// ViewEventRepository is the MongoDB implementation of
// ports.ViewEventRepository. Events are append-only; the collection is an
// audit trail, not the source of the per-listing counter.
type ViewEventRepository struct {
	collection *mongo.Collection
}

var _ ports.ViewEventRepository = (*ViewEventRepository)(nil)

func NewViewEventRepository(db *mongo.Database) *ViewEventRepository {
	return &ViewEventRepository{collection: db.Collection(viewEventsCollection)}
}

func ensureViewEventIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(viewEventsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "business_id", Value: 1}, {Key: "viewed_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create view event index: %w", err)
	}
	return nil
}

func (r *ViewEventRepository) Insert(ctx context.Context, event *domain.ViewEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("insert view event: %w", err)
	}
	return nil
}

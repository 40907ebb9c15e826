package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/localspot/directory-api/internal/core/domain"
	"github.com/localspot/directory-api/internal/core/ports"
)

const favoritesCollection = "favorites"

type favoriteDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	BusinessID string             `bson:"business_id"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (d *favoriteDoc) toDomain() *domain.Favorite {
	return &domain.Favorite{
		ID:         d.ID.Hex(),
		UserID:     d.UserID,
		BusinessID: d.BusinessID,
		CreatedAt:  d.CreatedAt,
	}
}

// FavoriteRepository is the MongoDB implementation of ports.FavoriteRepository.
// The unique compound index on (user_id, business_id) is the authoritative
// duplicate guard; a concurrent double-add loses the race here, not in the
// service pre-check.
type FavoriteRepository struct {
	collection *mongo.Collection
}

var _ ports.FavoriteRepository = (*FavoriteRepository)(nil)

func NewFavoriteRepository(db *mongo.Database) *FavoriteRepository {
	return &FavoriteRepository{collection: db.Collection(favoritesCollection)}
}

func ensureFavoriteIndexes(ctx context.Context, db *mongo.Database) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "business_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "business_id", Value: 1}}},
	}
	if _, err := db.Collection(favoritesCollection).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create favorite indexes: %w", err)
	}
	return nil
}

func (r *FavoriteRepository) Create(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error) {
	doc := favoriteDoc{
		UserID:     f.UserID,
		BusinessID: f.BusinessID,
		CreatedAt:  time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrFavoriteExists
		}
		return nil, fmt.Errorf("insert favorite: %w", err)
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *FavoriteRepository) Find(ctx context.Context, userID, businessID string) (*domain.Favorite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc favoriteDoc
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "business_id": businessID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrFavoriteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find favorite: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID, businessID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "business_id": businessID})
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer cursor.Close(ctx)

	var favorites []*domain.Favorite
	for cursor.Next(ctx) {
		var doc favoriteDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode favorite: %w", err)
		}
		favorites = append(favorites, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}
	return favorites, nil
}

func (r *FavoriteRepository) DeleteByBusiness(ctx context.Context, businessID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.M{"business_id": businessID}); err != nil {
		return fmt.Errorf("delete favorites by business: %w", err)
	}
	return nil
}

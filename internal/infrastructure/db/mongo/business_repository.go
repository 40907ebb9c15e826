package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/localspot/directory-api/internal/core/domain"
	"github.com/localspot/directory-api/internal/core/ports"
)

const businessesCollection = "businesses"

// businessDoc is the MongoDB shape of a listing. Owner ids are stored as hex
// strings so the favorites and users collections can be joined without type
// juggling.
type businessDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	Location    domain.Location    `bson:"location"`
	Contact     domain.Contact     `bson:"contact"`
	Logo        string             `bson:"logo,omitempty"`
	LogoKey     string             `bson:"logo_key,omitempty"`
	Services    []domain.Service   `bson:"services"`
	Views       int64              `bson:"views"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *businessDoc) toDomain() *domain.Business {
	return &domain.Business{
		ID:          d.ID.Hex(),
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Description: d.Description,
		Category:    domain.Category(d.Category),
		Location:    d.Location,
		Contact:     d.Contact,
		Logo:        d.Logo,
		LogoKey:     d.LogoKey,
		Services:    d.Services,
		Views:       d.Views,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func fromDomainBusiness(b *domain.Business) (*businessDoc, error) {
	doc := &businessDoc{
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Category:    string(b.Category),
		Location:    b.Location,
		Contact:     b.Contact,
		Logo:        b.Logo,
		LogoKey:     b.LogoKey,
		Services:    b.Services,
		Views:       b.Views,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.ID != "" {
		oid, err := primitive.ObjectIDFromHex(b.ID)
		if err != nil {
			return nil, domain.ErrBusinessNotFound
		}
		doc.ID = oid
	}
	return doc, nil
}

// BusinessRepository is the MongoDB implementation of ports.BusinessRepository.
type BusinessRepository struct {
	collection *mongo.Collection
}

var _ ports.BusinessRepository = (*BusinessRepository)(nil)

func NewBusinessRepository(db *mongo.Database) *BusinessRepository {
	return &BusinessRepository{collection: db.Collection(businessesCollection)}
}

func ensureBusinessIndexes(ctx context.Context, db *mongo.Database) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "views", Value: -1}}},
	}
	if _, err := db.Collection(businessesCollection).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create business indexes: %w", err)
	}
	return nil
}

func (r *BusinessRepository) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	doc, err := fromDomainBusiness(b)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert business: %w", err)
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*domain.Business, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBusinessNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc businessDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find business by id: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BusinessRepository) FindByOwner(ctx context.Context, ownerID string) (*domain.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc businessDoc
	err := r.collection.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find business by owner: %w", err)
	}
	return doc.toDomain(), nil
}

// List translates the normalised filter into a MongoDB query. Filters are
// AND'ed; the keyword fans out into an $or over name, description and
// embedded service names.
func (r *BusinessRepository) List(ctx context.Context, filter ports.ListBusinessesFilter) ([]*domain.Business, int64, error) {
	query := bson.M{}

	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.City != "" {
		query["location.city"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.City), Options: "i"}
	}
	if filter.Keyword != "" {
		keyword := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Keyword), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": keyword},
			bson.M{"description": keyword},
			bson.M{"services.name": keyword},
		}
	}

	sort := bson.D{{Key: "created_at", Value: -1}}
	if filter.SortBy == ports.SortPopular {
		sort = bson.D{{Key: "views", Value: -1}}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count businesses: %w", err)
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find businesses: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*domain.Business
	for cursor.Next(ctx) {
		var doc businessDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode business: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate businesses: %w", err)
	}
	return items, total, nil
}

func (r *BusinessRepository) Update(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	doc, err := fromDomainBusiness(b)
	if err != nil {
		return nil, err
	}
	doc.UpdatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("update business: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, domain.ErrBusinessNotFound
	}
	return doc.toDomain(), nil
}

func (r *BusinessRepository) SetViews(ctx context.Context, id string, views int64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBusinessNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"views": views}})
	if err != nil {
		return fmt.Errorf("set business views: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

func (r *BusinessRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBusinessNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

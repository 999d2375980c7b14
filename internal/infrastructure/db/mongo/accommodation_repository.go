package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stayhub/lodging-api/internal/core/domain"
	"github.com/stayhub/lodging-api/internal/core/ports"
)

const collectionAccommodations = "accommodations"

type AccommodationRepository struct {
	col *mongo.Collection
}

func NewAccommodationRepository(db *mongo.Database) *AccommodationRepository {
	return &AccommodationRepository{col: db.Collection(collectionAccommodations)}
}

type accommodationDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	MaxGuests   int                `bson:"maxGuests"`
	City        string             `bson:"city,omitempty"`
	Host        primitive.ObjectID `bson:"host"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *accommodationDocument) toDomain() *domain.Accommodation {
	a := &domain.Accommodation{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		MaxGuests:   d.MaxGuests,
		City:        d.City,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	if !d.Host.IsZero() {
		a.HostID = d.Host.Hex()
	}
	return a
}

func hostObjectID(hostID string) (primitive.ObjectID, error) {
	oid, ok := objectID(hostID)
	if !ok {
		return primitive.NilObjectID, domain.NewValidationError("host", "host must be a valid id")
	}
	return oid, nil
}

// Create inserts a new listing document.
func (r *AccommodationRepository) Create(ctx context.Context, a *domain.Accommodation) (*domain.Accommodation, error) {
	host, err := hostObjectID(a.HostID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := accommodationDocument{
		ID:          primitive.NewObjectID(),
		Name:        a.Name,
		Description: a.Description,
		MaxGuests:   a.MaxGuests,
		City:        a.City,
		Host:        host,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert accommodation: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByID retrieves a listing. A malformed id is reported as not found.
func (r *AccommodationRepository) FindByID(ctx context.Context, id string) (*domain.Accommodation, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrAccommodationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accommodationDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccommodationNotFound
		}
		return nil, fmt.Errorf("find accommodation: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AccommodationRepository) List(ctx context.Context) ([]*domain.Accommodation, error) {
	return r.find(ctx, bson.M{})
}

// ListByHost returns an empty slice for hosts that own nothing, including
// malformed host ids.
func (r *AccommodationRepository) ListByHost(ctx context.Context, hostID string) ([]*domain.Accommodation, error) {
	oid, ok := objectID(hostID)
	if !ok {
		return []*domain.Accommodation{}, nil
	}
	return r.find(ctx, bson.M{"host": oid})
}

func (r *AccommodationRepository) find(ctx context.Context, filter bson.M) ([]*domain.Accommodation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find accommodations: %w", err)
	}
	var docs []accommodationDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode accommodations: %w", err)
	}

	out := make([]*domain.Accommodation, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

func (r *AccommodationRepository) Update(ctx context.Context, id string, upd ports.AccommodationUpdate) (*domain.Accommodation, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrAccommodationNotFound
	}

	set, err := accommodationSet(upd)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accommodationDocument
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccommodationNotFound
		}
		return nil, fmt.Errorf("update accommodation: %w", err)
	}
	return doc.toDomain(), nil
}

func accommodationSet(upd ports.AccommodationUpdate) (bson.M, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.MaxGuests != nil {
		set["maxGuests"] = *upd.MaxGuests
	}
	if upd.City != nil {
		set["city"] = *upd.City
	}
	if upd.HostID != nil {
		host, err := hostObjectID(*upd.HostID)
		if err != nil {
			return nil, err
		}
		set["host"] = host
	}
	return set, nil
}

func (r *AccommodationRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrAccommodationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete accommodation: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAccommodationNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the accommodations collection.
func (r *AccommodationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "host", Value: 1}}})
	return err
}

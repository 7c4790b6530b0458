// internal/app/store/offers/offerstore.go
package offerstore

import (
	"context"
	"time"

	"github.com/campusconnect/mentorlink/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("offers")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Offer, error) {
	var o models.Offer
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return models.Offer{}, err
	}
	return o, nil
}

func (s *Store) Create(ctx context.Context, o models.Offer) (models.Offer, error) {
	now := time.Now().UTC()
	o.ID = primitive.NewObjectID()
	o.TitleCI = text.Fold(o.Title)
	o.TotalSlots = o.Slots
	o.CreatedAt = now
	o.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, o); err != nil {
		return models.Offer{}, err
	}
	return o, nil
}

// ListByAuthor returns an alum's offers, newest first.
func (s *Store) ListByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]models.Offer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"author_id": authorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var offers []models.Offer
	if err := cur.All(ctx, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// ListAllWithAuthors returns every offer joined with a minimal author
// projection (id, name, email). This is the candidate set fed to the
// matching engine.
func (s *Store) ListAllWithAuthors(ctx context.Context) ([]models.OfferWithAuthor, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "author_id",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: "$author"}},
		{{Key: "$project", Value: bson.M{
			"title": 1, "title_ci": 1, "description": 1, "tags": 1,
			"slots": 1, "total_slots": 1, "author_id": 1,
			"created_at": 1, "updated_at": 1,
			"author._id": 1, "author.full_name": 1, "author.email": 1,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var offers []models.OfferWithAuthor
	if err := cur.All(ctx, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// DecrementSlot conditionally takes one slot. The filter requires
// slots > 0 so concurrent accepts can never drive the count negative;
// a no-op (slots already 0) is not an error, matching the accept
// semantics where the connection still transitions.
func (s *Store) DecrementSlot(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "slots": bson.M{"$gt": 0}},
		bson.M{
			"$inc": bson.M{"slots": -1},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// internal/app/store/asks/askstore.go
package askstore

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
	return &Store{c: db.Collection("asks")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Ask, error) {
	var a models.Ask
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return models.Ask{}, err
	}
	return a, nil
}

func (s *Store) Create(ctx context.Context, a models.Ask) (models.Ask, error) {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.TitleCI = text.Fold(a.Title)
	a.CreatedAt = now
	a.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Ask{}, err
	}
	return a, nil
}

// ListByAuthor returns a student's asks, newest first.
func (s *Store) ListByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]models.Ask, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"author_id": authorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var asks []models.Ask
	if err := cur.All(ctx, &asks); err != nil {
		return nil, err
	}
	return asks, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

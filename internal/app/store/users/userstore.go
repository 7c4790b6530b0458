// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/campusconnect/mentorlink/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateEmail = errors.New("an account with this email already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.FullNameCI = text.Fold(u.FullName)
	if u.Status == "" {
		u.Status = "active"
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// UpdateProfile sets the editable profile fields. Empty strings clear
// the corresponding field; skills replace the stored list wholesale.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, headline, education, availability, image string, skills []string) error {
	set := bson.M{
		"headline":     headline,
		"education":    education,
		"availability": availability,
		"image":        image,
		"skills":       skills,
		"updated_at":   time.Now().UTC(),
	}
	if name != "" {
		set["full_name"] = name
		set["full_name_ci"] = text.Fold(name)
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// IncrementKudos bumps the kudos counter and returns the updated user
// (name and new total are used in the notification message).
func (s *Store) IncrementKudos(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	after := options.After
	opts := options.FindOneAndUpdate().
		SetReturnDocument(after).
		SetProjection(bson.M{"full_name": 1, "kudos": 1})

	var u models.User
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"kudos": 1},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		opts,
	).Decode(&u)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// internal/app/store/notifications/notificationstore.go
package notificationstore

import (
	"context"
	"time"

	"github.com/campusconnect/mentorlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// feedLimit caps the notification feed at the most recent entries.
const feedLimit = 20

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("notifications")}
}

func (s *Store) Create(ctx context.Context, n models.Notification) (models.Notification, error) {
	n.ID = primitive.NewObjectID()
	n.Read = false
	n.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

// ListRecent returns the user's newest notifications, read or not,
// capped at the feed limit.
func (s *Store) ListRecent(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(feedLimit)
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var notes []models.Notification
	if err := cur.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// MarkRead flags a single notification as read. The filter includes
// the owner so users cannot mark each other's notifications.
func (s *Store) MarkRead(ctx context.Context, id, userID primitive.ObjectID) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	return err
}

func (s *Store) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.c.UpdateMany(ctx,
		bson.M{"user_id": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	return err
}

func (s *Store) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"user_id": userID, "read": false})
}

// internal/app/store/connections/connectionstore.go
package connectionstore

import (
	"context"
	"errors"
	"time"

	"github.com/campusconnect/mentorlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateConnection = errors.New("a connection for this ask and offer already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("connections")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Connection, error) {
	var conn models.Connection
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&conn); err != nil {
		return models.Connection{}, err
	}
	return conn, nil
}

// ExistsActive reports whether a non-denied connection already links
// this student/alum pair over the same ask and offer. Denied requests
// do not block a fresh attempt.
func (s *Store) ExistsActive(ctx context.Context, studentID, alumID, askID, offerID primitive.ObjectID) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{
		"student_id": studentID,
		"alum_id":    alumID,
		"ask_id":     askID,
		"offer_id":   offerID,
		"status":     bson.M{"$ne": models.ConnectionDenied},
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts a new pending connection after checking for an
// existing active one. The check and insert are not atomic; the
// pairing index keeps lookups fast and a rare racing duplicate is
// harmless (the alum simply denies one of them).
func (s *Store) Create(ctx context.Context, conn models.Connection) (models.Connection, error) {
	exists, err := s.ExistsActive(ctx, conn.StudentID, conn.AlumID, conn.AskID, conn.OfferID)
	if err != nil {
		return models.Connection{}, err
	}
	if exists {
		return models.Connection{}, ErrDuplicateConnection
	}

	now := time.Now().UTC()
	conn.ID = primitive.NewObjectID()
	conn.Status = models.ConnectionPending
	conn.CreatedAt = now
	conn.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, conn); err != nil {
		return models.Connection{}, err
	}
	return conn, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	return err
}

// UpdateWorkspace sets only the workspace fields that were provided;
// nil pointers leave the stored value untouched.
func (s *Store) UpdateWorkspace(ctx context.Context, id primitive.ObjectID, meetingLink, feedbackFile, studentUploadFile *string) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if meetingLink != nil {
		set["meeting_link"] = *meetingLink
	}
	if feedbackFile != nil {
		set["feedback_file"] = *feedbackFile
	}
	if studentUploadFile != nil {
		set["student_upload_file"] = *studentUploadFile
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// ExistsCompleted reports whether the student has at least one
// completed connection with the alum. Kudos requires this.
func (s *Store) ExistsCompleted(ctx context.Context, studentID, alumID primitive.ObjectID) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{
		"student_id": studentID,
		"alum_id":    alumID,
		"status":     models.ConnectionCompleted,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Connection, error) {
	return s.list(ctx, bson.M{"student_id": studentID})
}

func (s *Store) ListByAlum(ctx context.Context, alumID primitive.ObjectID) ([]models.Connection, error) {
	return s.list(ctx, bson.M{"alum_id": alumID})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Connection, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var conns []models.Connection
	if err := cur.All(ctx, &conns); err != nil {
		return nil, err
	}
	return conns, nil
}

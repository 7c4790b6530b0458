// internal/domain/models/connection.go
package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Connection statuses. DENIED and COMPLETED are terminal.
const (
	ConnectionPending   = "PENDING"
	ConnectionAccepted  = "ACCEPTED"
	ConnectionDenied    = "DENIED"
	ConnectionCompleted = "COMPLETED"
)

// Connection pairs one Ask with one Offer and carries its own approval
// lifecycle. At most one non-DENIED connection may exist per
// (student, alum, ask, offer) tuple.
type Connection struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	StudentID primitive.ObjectID `bson:"student_id" json:"student_id"`
	AlumID    primitive.ObjectID `bson:"alum_id" json:"alum_id"`
	AskID     primitive.ObjectID `bson:"ask_id" json:"ask_id"`
	OfferID   primitive.ObjectID `bson:"offer_id" json:"offer_id"`
	Status    string             `bson:"status" json:"status"`

	// Workspace fields, set only while ACCEPTED.
	MeetingLink       string `bson:"meeting_link,omitempty" json:"meeting_link,omitempty"`
	FeedbackFile      string `bson:"feedback_file,omitempty" json:"feedback_file,omitempty"`
	StudentUploadFile string `bson:"student_upload_file,omitempty" json:"student_upload_file,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsValidConnectionStatus reports whether s is one of the known statuses.
func IsValidConnectionStatus(s string) bool {
	switch s {
	case ConnectionPending, ConnectionAccepted, ConnectionDenied, ConnectionCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a connection may move from one status to
// another. The table is strict: PENDING may become ACCEPTED or DENIED,
// ACCEPTED may become COMPLETED, and the terminal states admit nothing.
func CanTransition(from, to string) error {
	switch from {
	case ConnectionPending:
		if to == ConnectionAccepted || to == ConnectionDenied {
			return nil
		}
	case ConnectionAccepted:
		if to == ConnectionCompleted {
			return nil
		}
	}
	return fmt.Errorf("connection cannot change from %s to %s", from, to)
}

// internal/domain/models/notification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types created by connection transitions and kudos.
const (
	NotifyConnectionRequest   = "CONNECTION_REQUEST"
	NotifyConnectionAccepted  = "CONNECTION_ACCEPTED"
	NotifyConnectionDenied    = "CONNECTION_DENIED"
	NotifyConnectionCompleted = "CONNECTION_COMPLETED"
	NotifyKudosReceived       = "KUDOS_RECEIVED"
	NotifyWorkspaceUpdated    = "CONNECTION_WORKSPACE_UPDATED"
)

// Notification is a per-user feed entry. It is written as a side effect
// of connection lifecycle changes and consumed only for display.
type Notification struct {
	ID           primitive.ObjectID  `bson:"_id" json:"id"`
	UserID       primitive.ObjectID  `bson:"user_id" json:"user_id"`
	Type         string              `bson:"type" json:"type"`
	Title        string              `bson:"title" json:"title"`
	Message      string              `bson:"message" json:"message"`
	ConnectionID *primitive.ObjectID `bson:"connection_id,omitempty" json:"connection_id,omitempty"`
	Read         bool                `bson:"read" json:"read"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

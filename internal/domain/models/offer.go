// internal/domain/models/offer.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Offer is an alumnus's posted availability to mentor.
//
// Slots is the remaining capacity and is decremented only by the
// connection accept path. TotalSlots is the capacity at creation and
// feeds the "X of Y" display.
type Offer struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	AuthorID    primitive.ObjectID `bson:"author_id" json:"author_id"`
	Title       string             `bson:"title" json:"title"`
	TitleCI     string             `bson:"title_ci" json:"title_ci"`
	Description string             `bson:"description" json:"description"`
	Tags        []string           `bson:"tags" json:"tags"`
	Slots       int                `bson:"slots" json:"slots"`
	TotalSlots  int                `bson:"total_slots" json:"totalSlots"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// OfferWithAuthor joins an Offer with its author projection. It is the
// candidate shape fed to the matching engine and the match API response
// (plus matchReason).
type OfferWithAuthor struct {
	Offer  `bson:",inline"`
	Author AuthorRef `bson:"author" json:"author"`
}

// internal/domain/models/ask.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ask is a student's posted request for help.
//
// Tags are kept in the order the student entered them; duplicates are
// not collapsed. ProjectURL optionally links an external project page
// whose README text enriches the matching prompt.
type Ask struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	AuthorID    primitive.ObjectID `bson:"author_id" json:"author_id"`
	Title       string             `bson:"title" json:"title"`
	TitleCI     string             `bson:"title_ci" json:"title_ci"`
	Description string             `bson:"description" json:"description"`
	Tags        []string           `bson:"tags" json:"tags"`
	ProjectURL  string             `bson:"project_url,omitempty" json:"project_url,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// MaxTitleLen caps Ask and Offer titles.
const MaxTitleLen = 100

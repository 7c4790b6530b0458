// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents students, alumni, and admins.
//
// NOTE:
//   - Kudos is a reputation counter on alumni profiles. It is only
//     incremented through the connection kudos action.
//   - Skills/Headline/Education/Availability are profile fields shown
//     on the public profile page.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"full_name" json:"full_name"`
	FullNameCI   string             `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"`
	AuthMethod   string             `bson:"auth_method,omitempty" json:"auth_method,omitempty"` // password | google
	Role         string             `bson:"role" json:"role"`                                   // student | alumni | admin
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`

	Kudos        int      `bson:"kudos" json:"kudos"`
	Headline     string   `bson:"headline,omitempty" json:"headline,omitempty"`
	Education    string   `bson:"education,omitempty" json:"education,omitempty"`
	Skills       []string `bson:"skills,omitempty" json:"skills,omitempty"`
	Availability string   `bson:"availability,omitempty" json:"availability,omitempty"`
	Image        string   `bson:"image,omitempty" json:"image,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// AuthorRef is the minimal author projection embedded in match results
// and offer listings.
type AuthorRef struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"full_name" json:"name"`
	Email string             `bson:"email" json:"email"`
}

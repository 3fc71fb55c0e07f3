package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Roles a user can sign up with.
const (
	RoleCompetitor = "competitor"
	RoleOrganizer  = "organizer"
)

// User represents an account on the platform. The password hash is never
// serialized to JSON; every handler that returns a user relies on that.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"  json:"id"`
	FirstName    string        `bson:"first_name"     json:"firstName"`
	LastName     string        `bson:"last_name"      json:"lastName"`
	Email        string        `bson:"email"          json:"email"`
	PasswordHash string        `bson:"password_hash"  json:"-"`
	Role         string        `bson:"role"           json:"role"`
	School       string        `bson:"school"         json:"school"`
	Grade        string        `bson:"grade"          json:"grade"`
	Approved     bool          `bson:"approved"       json:"approved"`
	Favourites   []string      `bson:"favourites"     json:"favourites"`
	CreatedAt    time.Time     `bson:"created_at"     json:"-"`
	UpdatedAt    time.Time     `bson:"updated_at"     json:"-"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member holds a registration record. PasswordHash is a bcrypt hash; the
// raw password is never persisted or logged.
type Member struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Mobile       int64              `bson:"mobile" json:"mobile"`
	Email        string             `bson:"email" json:"email"`
	Occupation   string             `bson:"occupation" json:"occupation"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"-"`
	UpdatedAt    *time.Time         `bson:"updatedAt,omitempty" json:"-"`
}

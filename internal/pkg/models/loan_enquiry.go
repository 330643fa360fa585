package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoanEnquiry is keyed by mobile number for lookup, update and delete.
// Uniqueness of the mobile number is not enforced by the store; operations
// apply to the first matching document.
type LoanEnquiry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Mobile    int64              `bson:"mobile" json:"mobile"`
	Email     string             `bson:"email" json:"email"`
	Amount    float64            `bson:"amount" json:"amount"`
	Type      string             `bson:"type" json:"type"`
	Message   string             `bson:"message,omitempty" json:"message,omitempty"`
	Code      string             `bson:"code,omitempty" json:"code,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"-"`
}

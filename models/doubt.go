package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doubt is a support query submitted from the contact form. Write-only:
// nothing in the application updates or deletes these.
type Doubt struct {
	ID          primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Email       string             `json:"email" bson:"email"`
	Query       string             `json:"query" bson:"query"`
	Phone       string             `json:"phone" bson:"phone"`
	Category    string             `json:"category" bson:"category"`
	SubmittedAt time.Time          `json:"submitted_at" bson:"submitted_at"`
}

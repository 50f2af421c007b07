package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Recipe struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Ingredients  []string           `json:"ingredients" bson:"ingredients"`
	Instructions string             `json:"instructions" bson:"instructions"`
	PrepTime     int                `json:"prep_time" bson:"prep_time"`
	CookTime     int                `json:"cook_time" bson:"cook_time"`
	Servings     int                `json:"servings" bson:"servings"`
	Difficulty   string             `json:"difficulty" bson:"difficulty"`
	Tags         []string           `json:"tags" bson:"tags"`
	Image        string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

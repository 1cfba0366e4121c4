package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Poster is a promotional banner. The optional product link carries no
// lifecycle constraint; deleting the product leaves the poster in place.
type Poster struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name      string              `bson:"posterName" json:"posterName"`
	ProductID *primitive.ObjectID `bson:"productId,omitempty" json:"productId,omitempty"`
	ImageURL  string              `bson:"imageUrl" json:"imageUrl"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Habit tracks a recurring practice and its completion history.
type Habit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Streak    int                `bson:"streak" json:"streak"`
	Progress  []time.Time        `bson:"progress" json:"progress"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

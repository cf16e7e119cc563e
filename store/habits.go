package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yug-24/TaskFlow/models"
)

// ListHabits returns every habit owned by userID, in store-native order.
func (s *Store) ListHabits(ctx context.Context, userID string) ([]models.Habit, error) {
	cur, err := s.habits.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	habits := []models.Habit{}
	if err := cur.All(ctx, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// CreateHabit persists a new habit, assigning its id and timestamps.
func (s *Store) CreateHabit(ctx context.Context, habit *models.Habit) error {
	now := time.Now().UTC()
	habit.ID = primitive.NewObjectID()
	habit.CreatedAt = now
	habit.UpdatedAt = now
	if habit.Progress == nil {
		habit.Progress = []time.Time{}
	}

	_, err := s.habits.InsertOne(ctx, habit)
	return err
}

// UpdateHabit applies the validated fields to the habit matching
// (id, userID) in a single find-and-modify. Returns the updated document.
func (s *Store) UpdateHabit(ctx context.Context, id, userID string, fields map[string]any) (*models.Habit, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	var habit models.Habit
	err = s.habits.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&habit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &habit, nil
}

// DeleteHabit removes the habit matching (id, userID) in one operation.
func (s *Store) DeleteHabit(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	err = s.habits.FindOneAndDelete(ctx, bson.M{"_id": oid, "userId": userID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

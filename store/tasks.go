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

// ListTasks returns every task owned by userID, in store-native order.
func (s *Store) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	cur, err := s.tasks.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	tasks := []models.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask persists a new task, assigning its id and timestamps.
func (s *Store) CreateTask(ctx context.Context, task *models.Task) error {
	now := time.Now().UTC()
	task.ID = primitive.NewObjectID()
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := s.tasks.InsertOne(ctx, task)
	return err
}

// UpdateTask applies the validated fields to the task matching (id, userID)
// in a single find-and-modify, so ownership cannot change between check and
// write. Returns the updated document.
func (s *Store) UpdateTask(ctx context.Context, id, userID string, fields map[string]any) (*models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	var task models.Task
	err = s.tasks.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// ToggleTask flips completed on the task matching (id, userID) atomically
// via a pipeline update, avoiding a read-then-write round trip.
func (s *Store) ToggleTask(ctx context.Context, id, userID string) (*models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"completed": bson.M{"$not": "$completed"},
			"updatedAt": "$$NOW",
		}}},
	}

	var task models.Task
	err = s.tasks.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "userId": userID},
		pipeline,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes the task matching (id, userID) in one operation.
func (s *Store) DeleteTask(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	err = s.tasks.FindOneAndDelete(ctx, bson.M{"_id": oid, "userId": userID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

package controllers_test

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yug-24/TaskFlow/models"
	"github.com/yug-24/TaskFlow/store"
)

// fakeStore is an in-memory stand-in for *store.Store with the same
// (id, userId) scoping. Calls counts every store access so tests can assert
// that rejected requests never reach persistence.
type fakeStore struct {
	tasks  map[string]models.Task
	habits map[string]models.Habit
	Calls  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tasks:  map[string]models.Task{},
		habits: map[string]models.Habit{},
	}
}

func (f *fakeStore) ListTasks(_ context.Context, userID string) ([]models.Task, error) {
	f.Calls++
	out := []models.Task{}
	for _, t := range f.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateTask(_ context.Context, task *models.Task) error {
	f.Calls++
	now := time.Now().UTC()
	task.ID = primitive.NewObjectID()
	task.CreatedAt = now
	task.UpdatedAt = now
	f.tasks[task.ID.Hex()] = *task
	return nil
}

func (f *fakeStore) UpdateTask(_ context.Context, id, userID string, fields map[string]any) (*models.Task, error) {
	f.Calls++
	task, ok := f.tasks[id]
	if !ok || task.UserID != userID {
		return nil, store.ErrNotFound
	}
	if v, ok := fields["title"]; ok {
		task.Title = v.(string)
	}
	if v, ok := fields["completed"]; ok {
		task.Completed = v.(bool)
	}
	if v, ok := fields["deadline"]; ok {
		if v == nil {
			task.Deadline = nil
		} else {
			d := v.(time.Time)
			task.Deadline = &d
		}
	}
	task.UpdatedAt = time.Now().UTC()
	f.tasks[id] = task
	return &task, nil
}

func (f *fakeStore) ToggleTask(_ context.Context, id, userID string) (*models.Task, error) {
	f.Calls++
	task, ok := f.tasks[id]
	if !ok || task.UserID != userID {
		return nil, store.ErrNotFound
	}
	task.Completed = !task.Completed
	task.UpdatedAt = time.Now().UTC()
	f.tasks[id] = task
	return &task, nil
}

func (f *fakeStore) DeleteTask(_ context.Context, id, userID string) error {
	f.Calls++
	task, ok := f.tasks[id]
	if !ok || task.UserID != userID {
		return store.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeStore) ListHabits(_ context.Context, userID string) ([]models.Habit, error) {
	f.Calls++
	out := []models.Habit{}
	for _, h := range f.habits {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateHabit(_ context.Context, habit *models.Habit) error {
	f.Calls++
	now := time.Now().UTC()
	habit.ID = primitive.NewObjectID()
	habit.CreatedAt = now
	habit.UpdatedAt = now
	f.habits[habit.ID.Hex()] = *habit
	return nil
}

func (f *fakeStore) UpdateHabit(_ context.Context, id, userID string, fields map[string]any) (*models.Habit, error) {
	f.Calls++
	habit, ok := f.habits[id]
	if !ok || habit.UserID != userID {
		return nil, store.ErrNotFound
	}
	if v, ok := fields["name"]; ok {
		habit.Name = v.(string)
	}
	if v, ok := fields["streak"]; ok {
		habit.Streak = v.(int)
	}
	if v, ok := fields["progress"]; ok {
		habit.Progress = v.([]time.Time)
	}
	habit.UpdatedAt = time.Now().UTC()
	f.habits[id] = habit
	return &habit, nil
}

func (f *fakeStore) DeleteHabit(_ context.Context, id, userID string) error {
	f.Calls++
	habit, ok := f.habits[id]
	if !ok || habit.UserID != userID {
		return store.ErrNotFound
	}
	delete(f.habits, id)
	return nil
}

// fakeVerifier resolves fixed tokens to fixed uids.
type fakeVerifier struct {
	users map[string]string
}

func (f *fakeVerifier) Verify(_ context.Context, idToken string) (string, error) {
	uid, ok := f.users[idToken]
	if !ok {
		return "", errors.New("token rejected by provider")
	}
	return uid, nil
}

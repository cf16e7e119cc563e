package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yug-24/TaskFlow/models"
	"github.com/yug-24/TaskFlow/store"
)

// HabitStore is the persistence surface the habit endpoints need.
type HabitStore interface {
	ListHabits(ctx context.Context, userID string) ([]models.Habit, error)
	CreateHabit(ctx context.Context, habit *models.Habit) error
	UpdateHabit(ctx context.Context, id, userID string, fields map[string]any) (*models.Habit, error)
	DeleteHabit(ctx context.Context, id, userID string) error
}

type HabitController struct {
	store  HabitStore
	logger *zap.SugaredLogger
}

func NewHabitController(store HabitStore, logger *zap.SugaredLogger) *HabitController {
	return &HabitController{store: store, logger: logger}
}

// ListHabits returns every habit owned by the caller.
func (hc *HabitController) ListHabits(c *gin.Context) {
	uid := c.GetString("uid")

	habits, err := hc.store.ListHabits(c.Request.Context(), uid)
	if err != nil {
		hc.logger.Errorw("failed to fetch habits", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, habits)
}

// CreateHabit validates the payload and persists a new habit owned by the
// caller.
func (hc *HabitController) CreateHabit(c *gin.Context) {
	uid := c.GetString("uid")

	raw, ok := bindPayload(c)
	if !ok {
		return
	}
	fields, err := models.ValidateHabitPayload(raw, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit := &models.Habit{
		UserID:   uid,
		Name:     fields["name"].(string),
		Progress: []time.Time{},
	}
	if v, ok := fields["streak"]; ok {
		habit.Streak = v.(int)
	}
	if v, ok := fields["progress"]; ok {
		habit.Progress = v.([]time.Time)
	}

	if err := hc.store.CreateHabit(c.Request.Context(), habit); err != nil {
		hc.logger.Errorw("failed to create habit", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, habit)
}

// UpdateHabit applies an allow-listed partial update to the caller's habit.
func (hc *HabitController) UpdateHabit(c *gin.Context) {
	uid, id := c.GetString("uid"), c.Param("id")

	raw, ok := bindPayload(c)
	if !ok {
		return
	}
	fields, err := models.ValidateHabitPayload(raw, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := hc.store.UpdateHabit(c.Request.Context(), id, uid, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found or unauthorized"})
			return
		}
		hc.logger.Errorw("failed to update habit", "error", err, "uid", uid, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, habit)
}

// DeleteHabit removes the caller's habit.
func (hc *HabitController) DeleteHabit(c *gin.Context) {
	uid, id := c.GetString("uid"), c.Param("id")

	err := hc.store.DeleteHabit(c.Request.Context(), id, uid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found or unauthorized"})
			return
		}
		hc.logger.Errorw("failed to delete habit", "error", err, "uid", uid, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Habit deleted successfully"})
}

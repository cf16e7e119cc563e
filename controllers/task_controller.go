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

// TaskStore is the persistence surface the task endpoints need. Satisfied by
// *store.Store; tests supply fakes.
type TaskStore interface {
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	CreateTask(ctx context.Context, task *models.Task) error
	UpdateTask(ctx context.Context, id, userID string, fields map[string]any) (*models.Task, error)
	ToggleTask(ctx context.Context, id, userID string) (*models.Task, error)
	DeleteTask(ctx context.Context, id, userID string) error
}

type TaskController struct {
	store  TaskStore
	logger *zap.SugaredLogger
}

func NewTaskController(store TaskStore, logger *zap.SugaredLogger) *TaskController {
	return &TaskController{store: store, logger: logger}
}

// ListTasks returns every task owned by the caller.
func (tc *TaskController) ListTasks(c *gin.Context) {
	uid := c.GetString("uid")

	tasks, err := tc.store.ListTasks(c.Request.Context(), uid)
	if err != nil {
		tc.logger.Errorw("failed to fetch tasks", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask validates the payload and persists a new task owned by the
// caller, whatever userId the body claims.
func (tc *TaskController) CreateTask(c *gin.Context) {
	uid := c.GetString("uid")

	raw, ok := bindPayload(c)
	if !ok {
		return
	}
	fields, err := models.ValidateTaskPayload(raw, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := &models.Task{
		UserID: uid,
		Title:  fields["title"].(string),
	}
	if v, ok := fields["completed"]; ok {
		task.Completed = v.(bool)
	}
	if v, ok := fields["deadline"]; ok && v != nil {
		t := v.(time.Time)
		task.Deadline = &t
	}

	if err := tc.store.CreateTask(c.Request.Context(), task); err != nil {
		tc.logger.Errorw("failed to create task", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask applies an allow-listed partial update to the caller's task.
func (tc *TaskController) UpdateTask(c *gin.Context) {
	uid, id := c.GetString("uid"), c.Param("id")

	raw, ok := bindPayload(c)
	if !ok {
		return
	}
	fields, err := models.ValidateTaskPayload(raw, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := tc.store.UpdateTask(c.Request.Context(), id, uid, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found or unauthorized"})
			return
		}
		tc.logger.Errorw("failed to update task", "error", err, "uid", uid, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// ToggleTask flips completed without the client reading current state first.
func (tc *TaskController) ToggleTask(c *gin.Context) {
	uid, id := c.GetString("uid"), c.Param("id")

	task, err := tc.store.ToggleTask(c.Request.Context(), id, uid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found or unauthorized"})
			return
		}
		tc.logger.Errorw("failed to toggle task", "error", err, "uid", uid, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask removes the caller's task.
func (tc *TaskController) DeleteTask(c *gin.Context) {
	uid, id := c.GetString("uid"), c.Param("id")

	err := tc.store.DeleteTask(c.Request.Context(), id, uid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found or unauthorized"})
			return
		}
		tc.logger.Errorw("failed to delete task", "error", err, "uid", uid, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// bindPayload decodes the request body into a raw JSON object so validation
// can inspect the exact keys the client sent.
func bindPayload(c *gin.Context) (map[string]any, bool) {
	raw := map[string]any{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return nil, false
	}
	return raw, true
}

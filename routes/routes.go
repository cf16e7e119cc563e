package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yug-24/TaskFlow/controllers"
	"github.com/yug-24/TaskFlow/middleware"
)

// Deps carries everything the route table needs, built once in main.
type Deps struct {
	Tasks    controllers.TaskStore
	Habits   controllers.HabitStore
	Verifier middleware.TokenVerifier
	Logger   *zap.SugaredLogger
}

// RegisterRoutes mounts the public health probe, the authenticated API
// groups, and the 404 fallback.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	taskController := controllers.NewTaskController(deps.Tasks, deps.Logger)
	habitController := controllers.NewHabitController(deps.Habits, deps.Logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "TaskFlow Pro Backend is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(deps.Verifier, deps.Logger))
	{
		tasks := api.Group("/tasks")
		tasks.GET("", taskController.ListTasks)
		tasks.POST("", taskController.CreateTask)
		tasks.PUT("/:id", taskController.UpdateTask)
		tasks.PATCH("/:id/toggle", taskController.ToggleTask)
		tasks.DELETE("/:id", taskController.DeleteTask)

		habits := api.Group("/habits")
		habits.GET("", habitController.ListHabits)
		habits.POST("", habitController.CreateHabit)
		habits.PUT("/:id", habitController.UpdateHabit)
		habits.DELETE("/:id", habitController.DeleteHabit)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}

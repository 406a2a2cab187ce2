package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/user-task-api/internal/middleware"
)

// NewRouter builds the gin engine with every route registered.
func NewRouter(logger *slog.Logger, userHandler *UserHandler, taskHandler *TaskHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(logger), gin.Recovery())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := r.Group("/user")
	{
		users.GET("/", userHandler.ListUsers)
		users.GET("/user_id", userHandler.GetUser)
		users.POST("/create", userHandler.CreateUser)
		users.PUT("/update", userHandler.UpdateUser)
		users.DELETE("/delete", userHandler.DeleteUser)
		users.GET("/user/:user_id/tasks", userHandler.ListUserTasks)
		users.DELETE("/delete/:user_id", userHandler.DeleteUserWithTasks)
	}

	tasks := r.Group("/task")
	{
		tasks.GET("/", taskHandler.ListTasks)
		tasks.GET("/task_id", taskHandler.GetTask)
		tasks.POST("/create", taskHandler.CreateTask)
		tasks.PUT("/update", taskHandler.UpdateTask)
		tasks.DELETE("/delete", taskHandler.DeleteTask)
	}

	return r
}

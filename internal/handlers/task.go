package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/user-task-api/internal/dto"
	apierrors "github.com/yukikurage/user-task-api/internal/errors"
	"github.com/yukikurage/user-task-api/internal/services"
	"github.com/yukikurage/user-task-api/internal/utils"
)

// TaskHandler serves the /task routes.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns all active tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListActiveTasks(c.Request.Context(), utils.GetPaginationParams(c))
	if err != nil {
		respondServiceError(c, err, msgNoTaskFound)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns the task identified by the task_id query parameter
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := queryID(c, "task_id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err, msgNoTaskFound)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a task owned by the user in the user_id query parameter
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, msgInvalidPayload, err.Error())
		return
	}

	if _, err := h.taskService.CreateTask(c.Request.Context(), userID, req.ToCreateInput()); err != nil {
		respondServiceError(c, err, msgUserNotFound)
		return
	}

	c.JSON(http.StatusCreated, dto.StatusResponse{
		StatusCode:  http.StatusCreated,
		Transaction: "Successful",
	})
}

// UpdateTask replaces the title, content and priority of a task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := queryID(c, "task_id")
	if !ok {
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, msgInvalidPayload, err.Error())
		return
	}

	if err := h.taskService.UpdateTask(c.Request.Context(), taskID, req.ToUpdateInput()); err != nil {
		respondServiceError(c, err, msgNoTaskFound)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		StatusCode:  http.StatusOK,
		Transaction: "Task update is successful",
	})
}

// DeleteTask deletes the task identified by the task_id query parameter
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := queryID(c, "task_id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondServiceError(c, err, msgNoTaskFound)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		StatusCode:  http.StatusOK,
		Transaction: "Task delete is successful",
	})
}

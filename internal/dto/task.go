package dto

import (
	"time"

	"github.com/yukikurage/user-task-api/internal/models"
	"github.com/yukikurage/user-task-api/internal/services"
)

// TaskRequest is the body of POST /task/create and PUT /task/update
type TaskRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Content  string `json:"content"`
	Priority int    `json:"priority"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Priority  int       `json:"priority"`
	Slug      string    `json:"slug"`
	UserID    uint64    `json:"user_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCreateInput converts the request into service input
func (r TaskRequest) ToCreateInput() services.CreateTaskInput {
	return services.CreateTaskInput{
		Title:    r.Title,
		Content:  r.Content,
		Priority: r.Priority,
	}
}

// ToUpdateInput converts the request into service input
func (r TaskRequest) ToUpdateInput() services.UpdateTaskInput {
	return services.UpdateTaskInput{
		Title:    r.Title,
		Content:  r.Content,
		Priority: r.Priority,
	}
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		Title:     task.Title,
		Content:   task.Content,
		Priority:  task.Priority,
		Slug:      task.Slug,
		UserID:    task.UserID,
		IsActive:  task.IsActive,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks, never returning nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/user-task-api/internal/models"
	"github.com/yukikurage/user-task-api/internal/repository"
	"github.com/yukikurage/user-task-api/internal/utils"
	"gorm.io/gorm"
)

// TaskService handles task business logic
type TaskService struct {
	store repository.Store
}

// NewTaskService creates a new TaskService
func NewTaskService(store repository.Store) *TaskService {
	return &TaskService{
		store: store,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title    string
	Content  string
	Priority int
}

// UpdateTaskInput represents input for updating a task
type UpdateTaskInput struct {
	Title    string
	Content  string
	Priority int
}

// ListActiveTasks returns tasks with is_active = true
func (s *TaskService) ListActiveTasks(ctx context.Context, page utils.PaginationParams) ([]models.Task, error) {
	tasks, err := s.store.Tasks().ListActive(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task by ID
func (s *TaskService) GetTask(ctx context.Context, id uint64) (*models.Task, error) {
	task, err := s.store.Tasks().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// CreateTask creates an active task owned by userID
func (s *TaskService) CreateTask(ctx context.Context, userID uint64, input CreateTaskInput) (*models.Task, error) {
	task := &models.Task{
		Title:    input.Title,
		Content:  input.Content,
		Priority: input.Priority,
		Slug:     utils.Slugify(input.Title),
		UserID:   userID,
		IsActive: true,
	}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Users().FindByID(ctx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to find user: %w", err)
		}

		if err := tx.Tasks().Create(ctx, task); err != nil {
			// The owner was deleted between the lookup and the insert.
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to create task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateTask replaces the task's title, content and priority and recomputes its slug
func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input UpdateTaskInput) error {
	rows, err := s.store.Tasks().UpdateFields(ctx, id, map[string]any{
		"title":    input.Title,
		"content":  input.Content,
		"priority": input.Priority,
		"slug":     utils.Slugify(input.Title),
	})
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteTask deletes a task
func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	rows, err := s.store.Tasks().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}

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

// UserService handles user business logic
type UserService struct {
	store repository.Store
}

// NewUserService creates a new UserService
func NewUserService(store repository.Store) *UserService {
	return &UserService{
		store: store,
	}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Username  string
	FirstName string
	LastName  string
	Age       int
}

// UpdateUserInput represents input for updating a user.
// Username and slug are fixed at creation.
type UpdateUserInput struct {
	FirstName string
	LastName  string
	Age       int
}

// DeleteUserResult reports what a user deletion removed
type DeleteUserResult struct {
	UserID       uint64
	DeletedTasks int64
}

// ListActiveUsers returns users with is_active = true
func (s *UserService) ListActiveUsers(ctx context.Context, page utils.PaginationParams) ([]models.User, error) {
	users, err := s.store.Users().ListActive(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateUser creates an active user whose slug is derived from the username
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	user := &models.User{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Age:       input.Age,
		Slug:      utils.Slugify(input.Username),
		IsActive:  true,
	}

	if err := s.store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %v", ErrUsernameTaken, err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUser replaces the user's first name, last name and age
func (s *UserService) UpdateUser(ctx context.Context, id uint64, input UpdateUserInput) error {
	rows, err := s.store.Users().UpdateFields(ctx, id, map[string]any{
		"first_name": input.FirstName,
		"last_name":  input.LastName,
		"age":        input.Age,
	})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteUser deletes a user together with all of the user's tasks.
// Both deletions commit together; nothing is removed when the user does not exist.
func (s *UserService) DeleteUser(ctx context.Context, id uint64) (*DeleteUserResult, error) {
	result := &DeleteUserResult{UserID: id}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		deletedTasks, err := tx.Tasks().DeleteByUserID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete user tasks: %w", err)
		}

		rows, err := tx.Users().Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if rows == 0 {
			return ErrUserNotFound
		}

		result.DeletedTasks = deletedTasks
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ListUserTasks returns every task owned by the user, active or not
func (s *UserService) ListUserTasks(ctx context.Context, userID uint64) ([]models.Task, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	tasks, err := s.store.Tasks().ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user tasks: %w", err)
	}
	return tasks, nil
}

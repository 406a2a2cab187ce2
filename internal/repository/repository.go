package repository

import (
	"context"

	"github.com/yukikurage/user-task-api/internal/models"
	"github.com/yukikurage/user-task-api/internal/utils"
)

// Store is the data store handed to the services. Repositories obtained from a
// Store passed to Transaction's callback all share one unit of work.
type Store interface {
	// Users returns the user repository bound to this store
	Users() UserRepository

	// Tasks returns the task repository bound to this store
	Tasks() TaskRepository

	// Transaction runs fn in a unit of work that commits when fn returns nil
	// and rolls back otherwise
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// ListActive retrieves users with is_active = true in id order
	ListActive(ctx context.Context, page utils.PaginationParams) ([]models.User, error)

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// UpdateFields replaces the given columns and returns the number of matched rows
	UpdateFields(ctx context.Context, id uint64, fields map[string]any) (int64, error)

	// Delete hard deletes a user and returns the number of deleted rows
	Delete(ctx context.Context, id uint64) (int64, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// ListActive retrieves tasks with is_active = true in id order
	ListActive(ctx context.Context, page utils.PaginationParams) ([]models.Task, error)

	// ListByUserID retrieves every task owned by a user, active or not
	ListByUserID(ctx context.Context, userID uint64) ([]models.Task, error)

	// FindByID finds a task by ID
	FindByID(ctx context.Context, id uint64) (*models.Task, error)

	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// UpdateFields replaces the given columns and returns the number of matched rows
	UpdateFields(ctx context.Context, id uint64, fields map[string]any) (int64, error)

	// Delete hard deletes a task and returns the number of deleted rows
	Delete(ctx context.Context, id uint64) (int64, error)

	// DeleteByUserID deletes every task owned by a user
	DeleteByUserID(ctx context.Context, userID uint64) (int64, error)
}

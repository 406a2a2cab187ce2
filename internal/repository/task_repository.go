package repository

import (
	"context"

	"github.com/yukikurage/user-task-api/internal/database"
	"github.com/yukikurage/user-task-api/internal/models"
	"github.com/yukikurage/user-task-api/internal/utils"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

func (r *GormTaskRepository) ListActive(ctx context.Context, page utils.PaginationParams) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.WithContext(ctx).
		Scopes(database.Active, database.Paginate(page)).
		Order("id").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) ListByUserID(ctx context.Context, userID uint64) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *GormTaskRepository) UpdateFields(ctx context.Context, id uint64, fields map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *GormTaskRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Task{}, id)
	return result.RowsAffected, result.Error
}

func (r *GormTaskRepository) DeleteByUserID(ctx context.Context, userID uint64) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Task{})
	return result.RowsAffected, result.Error
}

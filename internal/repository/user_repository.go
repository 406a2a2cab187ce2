package repository

import (
	"context"

	"github.com/yukikurage/user-task-api/internal/database"
	"github.com/yukikurage/user-task-api/internal/models"
	"github.com/yukikurage/user-task-api/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) ListActive(ctx context.Context, page utils.PaginationParams) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).
		Scopes(database.Active, database.Paginate(page)).
		Order("id").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *GormUserRepository) UpdateFields(ctx context.Context, id uint64, fields map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *GormUserRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	return result.RowsAffected, result.Error
}

package database

import (
	"github.com/yukikurage/user-task-api/internal/utils"
	"gorm.io/gorm"
)

// Paginate applies pagination to a GORM query. A zero limit leaves the query unbounded.
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params.Limit <= 0 {
			return db
		}
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// Active restricts a query to rows with is_active = true.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

package database

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/yukikurage/user-task-api/internal/models"
	"gorm.io/gorm"
)

type index struct {
	model   any
	name    string
	columns []string
}

// indexes lists the lookup paths used by the listings and the cascade delete.
var indexes = []index{
	{&models.User{}, "idx_users_is_active", []string{"is_active"}},
	{&models.Task{}, "idx_tasks_user_id", []string{"user_id"}},
	{&models.Task{}, "idx_tasks_is_active", []string{"is_active"}},
}

// AddIndexes creates any missing secondary indexes. It is safe to run repeatedly.
func AddIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			slog.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to parse model for index %s: %w", idx.name, err)
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)",
			quote(db, idx.name), quote(db, stmt.Schema.Table), quoteColumns(db, idx.columns))
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Info("created index", "index", idx.name, "table", stmt.Schema.Table)
	}

	return nil
}

func quote(db *gorm.DB, name string) string {
	return db.Statement.Quote(name)
}

func quoteColumns(db *gorm.DB, columns []string) string {
	quoted := make([]string, len(columns))
	for i, column := range columns {
		quoted[i] = quote(db, column)
	}
	return strings.Join(quoted, ", ")
}

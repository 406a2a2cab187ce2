package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/user-task-api/internal/config"
	"github.com/yukikurage/user-task-api/internal/database"
	"github.com/yukikurage/user-task-api/internal/handlers"
	"github.com/yukikurage/user-task-api/internal/repository"
	"github.com/yukikurage/user-task-api/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	store := repository.NewStore(db)
	userHandler := handlers.NewUserHandler(services.NewUserService(store))
	taskHandler := handlers.NewTaskHandler(services.NewTaskService(store))

	r := handlers.NewRouter(logger, userHandler, taskHandler)

	// Start server
	logger.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}

package jobSchema

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/siherrmann/jobSchema/handler"
	"github.com/siherrmann/jobSchema/helper"
	mw "github.com/siherrmann/jobSchema/middleware"
	"github.com/siherrmann/jobSchema/registry"
	"github.com/siherrmann/jobSchema/storage"

	"github.com/labstack/echo/v4"
)

// ManagerServer initializes the manager handler, sets up routes, and starts the Echo server.
func ManagerServer(port string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	mh, err := InitManagerHandler(logger)
	if err != nil {
		log.Fatalf("Failed to initialize manager handler: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	m := mw.NewMiddleware(helper.GetEnvOrDefault("JOBS_ADMIN_TOKEN", ""), helper.GetEnvListOrDefault("JOBS_RESTRICTED_FIELDS", "default_args,message")...)
	SetupRoutes(e, mh, m)

	go func() {
		err := e.Start(":" + port)
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down server", "error", err)
	}
}

// InitManagerHandler creates the registries from environment variables, loads
// the task catalogs from the catalog filesystem and creates the manager handler.
func InitManagerHandler(logger *slog.Logger) (*handler.ManagerHandler, error) {
	// Create filesystem from environment variables
	filesystem, err := storage.CreateFilesystemFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem: %w", err)
	}

	tasks := registry.NewTaskRegistry(logger)
	queues, err := registry.NewQueueRegistry(
		helper.GetEnvOrDefault("JOBS_DEFAULT_QUEUE", ""),
		helper.GetEnvListOrDefault("JOBS_QUEUES", "celery")...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create queue registry: %w", err)
	}
	users := registry.NewUserRegistry()

	// Load a single catalog if a path is provided, otherwise every catalog of the filesystem
	catalogPath := helper.GetEnvOrDefault("JOBS_TASK_CATALOG", "")
	if catalogPath != "" {
		catalog, err := registry.LoadCatalog(filesystem, catalogPath)
		if err != nil {
			logger.Warn("Failed to load task catalog", "file", catalogPath, "error", err)
		} else {
			catalog.Apply(tasks, queues, users, logger)
		}
	} else {
		catalogs, err := registry.LoadCatalogs(filesystem, logger)
		if err != nil {
			logger.Warn("Failed to load task catalogs", "error", err)
		}
		for _, catalog := range catalogs {
			catalog.Apply(tasks, queues, users, logger)
		}
	}

	return handler.NewManagerHandler(filesystem, tasks, queues, users, logger), nil
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/siherrmann/jobSchema/registry"
	"github.com/siherrmann/jobSchema/schema"
	"github.com/siherrmann/jobSchema/storage"

	"github.com/labstack/echo/v4"
)

type ManagerHandler struct {
	filesystem storage.Filesystem
	tasks      *registry.TaskRegistry
	queues     *registry.QueueRegistry
	users      *registry.UserRegistry
	logger     *slog.Logger
}

func NewManagerHandler(filesystem storage.Filesystem, tasks *registry.TaskRegistry, queues *registry.QueueRegistry, users *registry.UserRegistry, logger *slog.Logger) *ManagerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ManagerHandler{
		filesystem: filesystem,
		tasks:      tasks,
		queues:     queues,
		users:      users,
		logger:     logger,
	}
}

func (m *ManagerHandler) jobSchema() *schema.JobSchema {
	return schema.NewJobSchema(m.tasks, m.queues, m.users)
}

func (m *ManagerHandler) runSchema() *schema.RunSchema {
	return schema.NewRunSchema(m.tasks, m.queues, m.users)
}

// Health check handler
func (m *ManagerHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "job-schema",
	})
}

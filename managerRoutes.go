package jobSchema

import (
	"net/http"

	"github.com/siherrmann/jobSchema/handler"
	mw "github.com/siherrmann/jobSchema/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes of the service
func SetupRoutes(e *echo.Echo, h *handler.ManagerHandler, m *mw.Middleware) {
	e.HTTPErrorHandler = handler.HandleError

	// Middleware
	// e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))

	// Custom Middleware
	e.Use(m.RequestContextMiddleware)

	e.GET("/health", h.HealthCheck)

	// API routes
	api := e.Group("/api")

	jobs := api.Group("/jobs")
	jobs.POST("/validate", h.ValidateJob)

	runs := api.Group("/runs")
	runs.POST("/validate", h.ValidateRun)

	tasks := api.Group("/tasks")
	tasks.GET("", h.GetTasks)
	tasks.GET("/:name", h.GetTask)
	tasks.GET("/:name/args", h.GetTaskArgs)

	queues := api.Group("/queues")
	queues.GET("", h.GetQueues)

	catalogs := api.Group("/catalogs")
	catalogs.GET("", h.GetCatalogs)
	catalogs.POST("/upload", h.UploadCatalogs)

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetQueues lists the available queues and the default queue
func (m *ManagerHandler) GetQueues(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"queues":        m.queues.Queues(),
		"default_queue": m.queues.DefaultQueue(),
	})
}

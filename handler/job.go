package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ValidateJob loads a job from the request body and responds with its
// canonical form as the caller is allowed to see it.
func (m *ManagerHandler) ValidateJob(c echo.Context) error {
	data, err := decodeBody(c)
	if err != nil {
		return renderJson(c, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
	}

	js := m.jobSchema()
	job, err := js.Load(data)
	if err != nil {
		return renderValidationError(c, err)
	}

	dumped, err := js.Dump(job, permissions(c))
	if err != nil {
		m.logger.Error("Failed to dump job", "task", job.Task, "error", err)
		return renderJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to dump job: %v", err))
	}

	return c.JSON(http.StatusOK, dumped)
}

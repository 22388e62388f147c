package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ValidateRun loads a run from the request body, folding custom_args into
// args, and responds with its canonical form.
func (m *ManagerHandler) ValidateRun(c echo.Context) error {
	data, err := decodeBody(c)
	if err != nil {
		return renderJson(c, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
	}

	rs := m.runSchema()
	run, err := rs.Load(data)
	if err != nil {
		return renderValidationError(c, err)
	}

	dumped, err := rs.Dump(run, permissions(c))
	if err != nil {
		m.logger.Error("Failed to dump run", "error", err)
		return renderJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to dump run: %v", err))
	}

	return c.JSON(http.StatusOK, dumped)
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/siherrmann/jobSchema/schema"

	"github.com/labstack/echo/v4"
)

// GetTasks lists all registered tasks sorted by name
func (m *ManagerHandler) GetTasks(c echo.Context) error {
	return c.JSON(http.StatusOK, schema.DumpTasks(m.tasks, permissions(c)))
}

// GetTask returns one registered task
func (m *ManagerHandler) GetTask(c echo.Context) error {
	name := c.Param("name")
	task, ok := m.tasks.Task(name)
	if !ok {
		return renderJson(c, http.StatusNotFound, fmt.Sprintf("Task %s not found", name))
	}
	return c.JSON(http.StatusOK, schema.DumpTask(task, permissions(c)))
}

// GetTaskArgs describes the arguments a run of the task takes. The custom
// type describes free-form arguments.
func (m *ManagerHandler) GetTaskArgs(c echo.Context) error {
	name := c.Param("name")
	if name == schema.CustomArgsType {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"type":   schema.CustomArgsType,
			"fields": []interface{}{},
		})
	}

	task, ok := m.tasks.Task(name)
	if !ok {
		return renderJson(c, http.StatusNotFound, fmt.Sprintf("Task %s not found", name))
	}
	return c.JSON(http.StatusOK, schema.ArgumentsDescription(task))
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/siherrmann/jobSchema/model"
	"github.com/siherrmann/jobSchema/schema"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTasksHandler(t *testing.T) {
	handler := newTestHandler(t)
	e := echo.New()

	t.Run("GetTasks lists registered tasks", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.GetTasks(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var tasks []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
		require.Len(t, tasks, 1)
		assert.Equal(t, "test-task", tasks[0]["name"])

		input := tasks[0]["parameters"].(map[string]interface{})["input"].(map[string]interface{})
		assert.Nil(t, input["default"])
	})

	t.Run("GetTasks omits fields the caller may not see", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		model.SetRequestContext(c, model.RequestContext{Permissions: schema.NewDenyFields("parameters")})

		require.NoError(t, handler.GetTasks(c))

		var tasks []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
		require.Len(t, tasks, 1)
		assert.NotContains(t, tasks[0], "parameters")
	})
}

func TestGetTaskHandler(t *testing.T) {
	handler := newTestHandler(t)
	e := echo.New()

	newContext := func(path string, name string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("name")
		c.SetParamValues(name)
		return c, rec
	}

	t.Run("GetTask returns a registered task", func(t *testing.T) {
		c, rec := newContext("/api/tasks/test-task", "test-task")

		require.NoError(t, handler.GetTask(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Test task", decodeResponse(t, rec)["description"])
	})

	t.Run("GetTask with unknown task", func(t *testing.T) {
		c, rec := newContext("/api/tasks/unknown", "unknown")

		require.NoError(t, handler.GetTask(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Task unknown not found")
	})

	t.Run("GetTaskArgs describes the task arguments", func(t *testing.T) {
		c, rec := newContext("/api/tasks/test-task/args", "test-task")

		require.NoError(t, handler.GetTaskArgs(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeResponse(t, rec)
		assert.Equal(t, "test-task", body["type"])
		fields := body["fields"].([]interface{})
		require.Len(t, fields, 1)
		assert.Equal(t, "input", fields[0].(map[string]interface{})["key"])
		assert.Equal(t, true, fields[0].(map[string]interface{})["required"])
	})

	t.Run("GetTaskArgs of custom arguments has no fields", func(t *testing.T) {
		c, rec := newContext("/api/tasks/custom/args", "custom")

		require.NoError(t, handler.GetTaskArgs(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []interface{}{}, decodeResponse(t, rec)["fields"])
	})

	t.Run("GetTaskArgs with unknown task", func(t *testing.T) {
		c, rec := newContext("/api/tasks/unknown/args", "unknown")

		require.NoError(t, handler.GetTaskArgs(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
